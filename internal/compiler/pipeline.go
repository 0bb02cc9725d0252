package compiler

import (
	"os"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
	"github.com/gracepriest/BasicLangvb-sub002/internal/errors"
	"github.com/gracepriest/BasicLangvb-sub002/internal/ir"
	"github.com/gracepriest/BasicLangvb-sub002/internal/parser"
	"github.com/gracepriest/BasicLangvb-sub002/internal/semantic"
	"github.com/gracepriest/BasicLangvb-sub002/internal/types"
)

// Result carries the output of one compilation, stage by stage. Lexical
// and syntax failures are fatal, so later fields stay nil; semantic
// diagnostics accumulate, and the IR module is built only for programs
// that analyzed cleanly.
type Result struct {
	Filename string
	Source   string

	File       *ast.File
	ScanErrors []parser.ScanError
	ParseError *parser.ParseError
	Analysis   *semantic.Result
	Catalog    *types.Catalog
	Module     *ir.Module
}

// Success reports whether the whole pipeline ran and produced IR.
func (r *Result) Success() bool {
	return r.Module != nil
}

// Diagnostics folds every stage's findings into one positioned list,
// sorted by source position.
func (r *Result) Diagnostics() []errors.CompilerError {
	var diags []errors.CompilerError
	for _, scanErr := range r.ScanErrors {
		diags = append(diags, errors.NewError(errors.ErrorLexical, scanErr.Message, r.astPos(scanErr.Position)).
			WithLength(scanErr.Length).Build())
	}
	if r.ParseError != nil {
		diags = append(diags, errors.NewError(errors.ErrorSyntax, r.ParseError.Message, r.astPos(r.ParseError.Position)).Build())
	}
	if r.Analysis != nil {
		diags = append(diags, r.Analysis.Diagnostics...)
	}
	errors.SortByPosition(diags)
	return diags
}

// astPos lifts a scanner position into the AST position space, tagging
// it with the compiled file's name.
func (r *Result) astPos(pos parser.Position) ast.Position {
	return ast.Position{
		Filename: r.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

// Format renders every diagnostic with source context.
func (r *Result) Format() string {
	reporter := errors.NewErrorReporter(r.Filename, r.Source)
	return reporter.FormatAll(r.Diagnostics())
}

// Compile runs the full pipeline over one source text: scan, parse,
// analyze, lower. Each stage consumes the previous stage's output
// completely before the next begins; a fatal stage stops the pipeline,
// and no partial IR is ever produced for a program that failed analysis.
func Compile(filename, source string) *Result {
	result := &Result{Filename: filename, Source: source}

	file, parseErr, scanErrs := parser.ParseSource(filename, source)
	result.ScanErrors = scanErrs
	result.ParseError = parseErr
	if len(scanErrs) > 0 || parseErr != nil {
		return result
	}
	result.File = file

	analyzer := semantic.NewAnalyzer()
	result.Analysis = analyzer.Analyze(file)
	result.Catalog = analyzer.Catalog()
	if !result.Analysis.Success() {
		return result
	}

	result.Module = ir.Build(file, result.Analysis, result.Catalog)
	return result
}

// CompileFile reads and compiles one source file from disk.
func CompileFile(path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(path, string(source)), nil
}
