package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
)

const diagnosticSource = "basiclang"

// ConvertDiagnostics transforms compiler diagnostics into LSP
// diagnostics for IDE display. The compiler already folds lexical,
// syntax, and semantic findings into one positioned list, so a single
// converter covers every stage.
func ConvertDiagnostics(diags []errors.CompilerError) []protocol.Diagnostic {
	var result []protocol.Diagnostic
	for _, d := range diags {
		length := d.Length
		if length <= 0 {
			length = 1
		}
		line := uint32(d.Position.Line - 1)
		start := uint32(d.Position.Column - 1)

		severity := protocol.DiagnosticSeverityError
		if d.IsWarning() {
			severity = protocol.DiagnosticSeverityWarning
		}

		code := d.Code
		message := d.Message
		for _, s := range d.Suggestions {
			message += "\nhelp: " + s.Message
		}
		for _, n := range d.Notes {
			message += "\nnote: " + n
		}

		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(length)},
			},
			Severity: ptrSeverity(severity),
			Code:     &protocol.IntegerOrString{Value: code},
			Source:   ptrString(diagnosticSource),
			Message:  message,
		})
	}
	return result
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
