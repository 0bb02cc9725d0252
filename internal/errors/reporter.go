package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

// ErrorLevel is the severity of a diagnostic.
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is one diagnostic: severity, stable code, message, and the
// source region it covers, plus optional suggestions and notes.
type CompilerError struct {
	Level       ErrorLevel
	Code        string
	Message     string
	Position    ast.Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
}

// Suggestion is one suggested fix attached to a diagnostic.
type Suggestion struct {
	Message     string
	Replacement string
}

// IsError reports whether the diagnostic is error severity.
func (e CompilerError) IsError() bool {
	return e.Level == Error
}

// IsWarning reports whether the diagnostic is warning severity.
func (e CompilerError) IsWarning() bool {
	return e.Level == Warning
}

// SortByPosition orders diagnostics by their source location, in place.
// Analysis visits declarations before bodies, so without sorting the output
// order would jump around the file.
func SortByPosition(diags []CompilerError) {
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Position.Offset < diags[j].Position.Offset
	})
}

// HasErrors reports whether any diagnostic in the list is error severity.
func HasErrors(diags []CompilerError) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}

// ErrorReporter renders diagnostics against the source text they point
// into, with the offending line, a caret marker, and one line of context
// either side.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders one diagnostic.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	lineNumberWidth := er.lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line > 1 && err.Position.Line-1 < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line-1)),
			dim("│"),
			er.lines[err.Position.Line-2]))
	}

	if err.Position.Line <= len(er.lines) && err.Position.Line > 0 {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line)),
			dim("│"),
			er.lines[err.Position.Line-1]))

		marker := er.marker(err.Position.Column, err.Length, err.Level)
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	if err.Position.Line < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, err.Position.Line+1)),
			dim("│"),
			er.lines[err.Position.Line]))
	}

	if len(err.Suggestions) > 0 {
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		for _, suggestion := range err.Suggestions {
			result.WriteString(fmt.Sprintf("%s %s: %s\n",
				indent, suggestionColor("help"), suggestion.Message))
			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(suggestion.Replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatAll renders a batch of diagnostics in source order.
func (er *ErrorReporter) FormatAll(diags []CompilerError) string {
	SortByPosition(diags)
	var result strings.Builder
	for _, d := range diags {
		result.WriteString(er.FormatError(d))
	}
	return result.String()
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (er *ErrorReporter) marker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func (er *ErrorReporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
