package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	for _, spelling := range []string{"Print", "print", "PRINT"} {
		def, ok := Lookup(spelling)
		require.True(t, ok, "should find %q", spelling)
		assert.Equal(t, "Print", def.Name)
	}

	_, ok := Lookup("NoSuchRoutine")
	assert.False(t, ok)
}

func TestSignatures(t *testing.T) {
	length, ok := Lookup("Len")
	require.True(t, ok)
	require.Len(t, length.Parameters, 1)
	assert.Equal(t, "String", length.Parameters[0].Type.Name)
	assert.Equal(t, "Integer", length.ReturnType.Name)

	printDef, ok := Lookup("Print")
	require.True(t, ok)
	assert.Nil(t, printDef.ReturnType, "Print is a Sub")

	mid, ok := Lookup("Mid")
	require.True(t, ok)
	assert.Len(t, mid.Parameters, 3)

	ubound, ok := Lookup("UBound")
	require.True(t, ok)
	assert.Equal(t, 1, ubound.Parameters[0].Type.Rank, "UBound takes an array")
}

func TestNamesCoverTable(t *testing.T) {
	names := Names()
	assert.GreaterOrEqual(t, len(names), 10)
	for _, n := range names {
		_, ok := Lookup(n)
		assert.True(t, ok, "name %q should round-trip", n)
	}
}
