package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/gracepriest/BasicLangvb-sub002/internal/lsp"
)

const sampleSource = `Module Bank
    Const Rate As Double = 0.05

    Function Interest(balance As Double) As Double
        Return balance * Rate
    End Function
End Module
`

func openDocument(t *testing.T, handler *lsp.Handler, uri, text string) []protocol.Diagnostic {
	t.Helper()
	var published []protocol.Diagnostic
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if p, ok := params.(*protocol.PublishDiagnosticsParams); ok {
				published = p.Diagnostics
			}
		},
	}
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: text},
	})
	require.NoError(t, err)
	return published
}

func TestDidOpenPublishesNoDiagnosticsForCleanSource(t *testing.T) {
	handler := lsp.NewHandler()
	published := openDocument(t, handler, "file:///tmp/bank.bas", sampleSource)
	assert.Empty(t, published)

	result := handler.Result("/tmp/bank.bas")
	require.NotNil(t, result)
	assert.True(t, result.Success())
}

func TestDidOpenPublishesSemanticDiagnostics(t *testing.T) {
	handler := lsp.NewHandler()
	published := openDocument(t, handler, "file:///tmp/bad.bas", `Module M
    Sub Main()
        total = 1
    End Sub
End Module
`)
	require.Len(t, published, 1)
	diag := published[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Equal(t, "basiclang", *diag.Source)
	assert.Contains(t, diag.Message, "total")
	// "total" starts at 1-based line 3, column 9.
	assert.Equal(t, uint32(2), diag.Range.Start.Line)
	assert.Equal(t, uint32(8), diag.Range.Start.Character)
	assert.Equal(t, uint32(13), diag.Range.End.Character)
}

func TestDidChangeRecompiles(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/change.bas"
	published := openDocument(t, handler, uri, `Module M
    Sub Main()
        x = 1
    End Sub
End Module
`)
	require.NotEmpty(t, published)

	var republished []protocol.Diagnostic
	republishedSet := false
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if p, ok := params.(*protocol.PublishDiagnosticsParams); ok {
				republished = p.Diagnostics
				republishedSet = true
			}
		},
	}
	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: sampleSource},
		},
	})
	require.NoError(t, err)
	assert.True(t, republishedSet, "a fixed document must clear its diagnostics")
	assert.Empty(t, republished)
}

func TestDidCloseDropsDocument(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/close.bas"
	openDocument(t, handler, uri, sampleSource)
	require.NotNil(t, handler.Result("/tmp/close.bas"))

	err := handler.TextDocumentDidClose(&glsp.Context{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Nil(t, handler.Result("/tmp/close.bas"))
}

func TestSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/tokens.bas"
	openDocument(t, handler, uri, sampleSource)

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	require.NotEmpty(t, tokens.Data)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)

	// Declarations come out in source order.
	assertToken(t, decoded[0], 1, 8, 4, "namespace")  // Bank
	assertToken(t, decoded[1], 2, 11, 4, "variable")  // Rate
	assertToken(t, decoded[2], 2, 19, 6, "type")      // Double
	assertToken(t, decoded[3], 4, 14, 8, "function")  // Interest
	assertToken(t, decoded[4], 4, 23, 7, "parameter") // balance
}

func TestCompletionOffersKeywordsAndDocumentSymbols(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/complete.bas"
	openDocument(t, handler, uri, sampleSource)

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		},
	})
	require.NoError(t, err)
	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	labels := make(map[string]bool)
	for _, item := range list.Items {
		labels[item.Label] = true
	}
	assert.True(t, labels["Function"], "keywords are offered")
	assert.True(t, labels["PrintLine"], "runtime routines are offered")
	assert.True(t, labels["Interest"], "document routines are offered")
	assert.True(t, labels["Rate"], "document constants are offered")
}

func TestSemanticTokensEmptyForUnparsedDocument(t *testing.T) {
	handler := lsp.NewHandler()
	uri := "file:///tmp/broken.bas"
	openDocument(t, handler, uri, "Module M\n    Sub Main(\nEnd Module\n")

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Empty(t, tokens.Data)
}

type decodedToken struct {
	Line   uint32 // 1-based, to match editor rulers
	Char   uint32 // 1-based
	Length uint32
	Type   string
}

func decodeSemanticTokens(raw []uint32) ([]decodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}
	var (
		decoded []decodedToken
		line    uint32
		char    uint32
	)
	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}
		decoded = append(decoded, decodedToken{
			Line:   line + 1,
			Char:   char + 1,
			Length: raw[i+2],
			Type:   lsp.SemanticTokenTypes[raw[i+3]],
		})
	}
	return decoded, nil
}

func assertToken(t *testing.T, token decodedToken, line, char, length uint32, tokenType string) {
	t.Helper()
	assert.Equal(t, line, token.Line, "line")
	assert.Equal(t, char, token.Char, "char")
	assert.Equal(t, length, token.Length, "char position")
	assert.Equal(t, tokenType, token.Type, "token type")
}
