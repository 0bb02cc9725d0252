package parser

import (
	"fmt"

	"github.com/gracepriest/BasicLangvb-sub002/internal/ast"
)

// ParseError is a positioned syntax error. The parser aborts on the first
// unexpected token; there is no recovery point in a newline-separated
// grammar that would not cascade.
type ParseError struct {
	Message  string
	Position Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// Parser consumes a token stream and produces the AST for one source file.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	err      *ParseError
}

// bailout is the sentinel the parser panics with internally on the first
// syntax error. ParseSource recovers it; it never crosses the package API.
type bailout struct{}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   stripComments(tokens),
	}
}

// ParseSource lexes and parses one file. Scan errors are fatal: when any
// are present the token stream is not trustworthy and no parse is
// attempted.
func ParseSource(filename string, source string) (*ast.File, *ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.Errors()) > 0 {
		return nil, nil, scanner.Errors()
	}

	p := NewParser(filename, tokens)
	file := p.parseFile()
	if p.err != nil {
		return nil, p.err, nil
	}
	return file, nil, nil
}

func stripComments(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type != COMMENT {
			out = append(out, t)
		}
	}
	return out
}

func (p *Parser) parseFile() *ast.File {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()

	file := &ast.File{
		Pos: ast.Position{Filename: p.filename, Line: 1, Column: 1},
	}
	p.skipNewlines()
	for !p.isAtEnd() {
		file.Decls = append(file.Decls, p.parseDecl())
		p.expectSeparator()
		p.skipNewlines()
	}
	file.EndPos = p.makePos(p.peek())
	return file
}
