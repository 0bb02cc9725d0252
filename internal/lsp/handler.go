// Package lsp implements the language server handlers: it keeps open
// documents in memory, recompiles them on every change, publishes the
// compiler's diagnostics, and serves semantic tokens from the AST.
package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/compiler"
)

// SemanticTokenTypes is the legend of token types this server emits,
// advertised to the client at initialize time.
var SemanticTokenTypes = []string{
	"namespace",
	"type",
	"enumMember",
	"function",
	"method",
	"variable",
	"parameter",
	"property",
	"number",
	"string",
}

// SemanticTokenModifiers is the legend of token modifiers.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
	"static",
}

// Handler implements the LSP server handlers. Documents are keyed by
// filesystem path; the text of record is what the client sent, never
// what is on disk.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	results map[string]*compiler.Result
}

func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		results: make(map[string]*compiler.Result),
	}
}

// Initialize advertises the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("LSP initialized")
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("LSP shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen compiles the opened document and publishes its
// diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Printf("opened %s", uri)
	return h.update(ctx, uri, params.TextDocument.Text)
}

// TextDocumentDidChange recompiles on every full-sync change.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	text, ok := wholeText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-document change for %s", uri)
	}
	return h.update(ctx, uri, text)
}

// TextDocumentDidClose drops the document from the in-memory store.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Printf("closed %s", uri)

	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.results, path)
	return nil
}

// TextDocumentCompletion offers keywords, runtime routines, and the
// document's own declarations.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	result := h.results[path]
	h.mu.RUnlock()

	var file *ast.File
	if result != nil {
		file = result.File
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(file),
	}, nil
}

// TextDocumentSemanticTokensFull serves semantic tokens for the whole
// document from the last good compile. A document that never scanned or
// parsed has no AST and gets an empty token set, not an error.
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	result := h.results[path]
	h.mu.RUnlock()

	if result == nil || result.File == nil {
		return &protocol.SemanticTokens{}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(CollectSemanticTokens(result.File))}, nil
}

// update stores the new text, recompiles, and publishes diagnostics.
func (h *Handler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return err
	}

	result := compiler.Compile(path, text)

	h.mu.Lock()
	h.content[path] = text
	h.results[path] = result
	h.mu.Unlock()

	diagnostics := ConvertDiagnostics(result.Diagnostics())
	if diagnostics == nil {
		// An empty (non-nil) list clears stale squiggles on the client.
		diagnostics = []protocol.Diagnostic{}
	}
	if ctx != nil && ctx.Notify != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: diagnostics,
		})
	}
	return nil
}

// Result returns the last compile of path, for tests and tooling.
func (h *Handler) Result(path string) *compiler.Result {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.results[path]
}

// encodeTokens packs tokens into the LSP wire format using delta-line,
// delta-start compression.
func encodeTokens(tokens []SemanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}
		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))
		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}

// wholeText extracts the full document text from a full-sync change set.
func wholeText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

// uriToPath converts a file URI to a platform-local path.
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path

	// On Windows strip the leading slash of /C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
