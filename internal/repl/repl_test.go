package repl

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func feed(t *testing.T, lines ...string) string {
	t.Helper()
	var out strings.Builder
	session := NewSession(&out)
	for _, line := range lines {
		if !session.HandleLine(line) {
			break
		}
	}
	return out.String()
}

func TestBlankLineCompilesBuffer(t *testing.T) {
	out := feed(t,
		"Module M",
		"    Function Twice(n As Integer) As Integer",
		"        Return n * 2",
		"    End Function",
		"End Module",
		"",
	)
	assert.Contains(t, out, "func Twice(n.0 Integer) Integer")
	assert.Contains(t, out, "ok")
}

func TestDiagnosticsPrintedForBadProgram(t *testing.T) {
	out := feed(t,
		"Module M",
		"    Sub Main()",
		"        x = 1",
		"    End Sub",
		"End Module",
		"",
	)
	assert.Contains(t, out, "x")
	assert.NotContains(t, out, "ok")
}

func TestResetDiscardsBuffer(t *testing.T) {
	out := feed(t,
		"Module Broken",
		":reset",
		"Module M",
		"    Sub Main()",
		"    End Sub",
		"End Module",
		"",
	)
	assert.Contains(t, out, "buffer cleared")
	assert.Contains(t, out, "ok")
}

func TestQuitStopsSession(t *testing.T) {
	var out strings.Builder
	session := NewSession(&out)
	require.True(t, session.HandleLine("Module M"))
	assert.False(t, session.HandleLine(":quit"))
}

func TestUnknownCommandReported(t *testing.T) {
	out := feed(t, ":frobnicate")
	assert.Contains(t, out, "unknown command")
}
