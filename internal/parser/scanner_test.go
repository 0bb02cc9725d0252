package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "Module Sub Function Dim Const If Then Else While Do Loop Return total"
	expected := []TokenType{
		MODULE, SUB, FUNCTION, DIM, CONST, IF, THEN, ELSE,
		WHILE, DO, LOOP, RETURN, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	input := "MODULE module MoDuLe dim DIM"
	expected := []TokenType{MODULE, MODULE, MODULE, DIM, DIM}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestCompoundEndKeywords(t *testing.T) {
	input := "End If End While End Sub End Function End Module end   if END SELECT"
	expected := []TokenType{
		END_IF, END_WHILE, END_SUB, END_FUNCTION, END_MODULE, END_IF, END_SELECT,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s (lexeme %q)", exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestEndWithoutCompoundPartner(t *testing.T) {
	// "End total" is not a compound keyword; END and the identifier lex
	// separately. A newline between End and If also blocks the merge.
	input := "End total End\nIf"
	expected := []TokenType{END, IDENTIFIER, END, NEWLINE, IF}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 3.14 10L 2.5F 1e10 6.02e23 1.5e-3"
	expected := []TokenType{
		INTEGER_LITERAL, INTEGER_LITERAL, DOUBLE_LITERAL, LONG_LITERAL,
		SINGLE_LITERAL, DOUBLE_LITERAL, DOUBLE_LITERAL, DOUBLE_LITERAL,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s for %q, got %s", exp, tokens[i].Lexeme, tokens[i].Type)
		}
	}
}

func TestDotStartsFractionOnlyBeforeDigit(t *testing.T) {
	// "1." is the integer 1 followed by a DOT, not a Double.
	input := "1. 1.5"
	expected := []TokenType{INTEGER_LITERAL, DOT, DOUBLE_LITERAL}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "line\nbreak" "tab\there" "quote\"inside"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []string{"hello", "line\nbreak", "tab\there", "quote\"inside"}
	for i, exp := range expected {
		if tokens[i].Type != STRING_LITERAL {
			t.Fatalf("token %d: expected STRING_LITERAL, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected %q, got %q", i, exp, tokens[i].Lexeme)
		}
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	scanner := NewScanner(`"no closing quote`)
	scanner.ScanTokens()

	if len(scanner.Errors()) != 1 {
		t.Fatalf("expected 1 scan error, got %d", len(scanner.Errors()))
	}
	if scanner.Errors()[0].Message != "unterminated string literal" {
		t.Errorf("unexpected message: %s", scanner.Errors()[0].Message)
	}
}

func TestInterpolatedString(t *testing.T) {
	input := `$"hello {name}, sum is {a + b}"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != INTERP_STRING {
		t.Fatalf("expected INTERP_STRING, got %s", tokens[0].Type)
	}
	if tokens[0].Lexeme != input {
		t.Errorf("expected verbatim lexeme, got %q", tokens[0].Lexeme)
	}
}

func TestInterpolatedStringTracksBraceDepth(t *testing.T) {
	// Nested braces and an embedded string with a closing brace inside
	// must not end the literal early.
	input := `$"value: {fmt({x})} and {s & "}"}"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(scanner.Errors()) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanner.Errors())
	}
	if tokens[0].Type != INTERP_STRING {
		t.Fatalf("expected INTERP_STRING, got %s", tokens[0].Type)
	}
	if tokens[0].Lexeme != input {
		t.Errorf("expected verbatim lexeme, got %q", tokens[0].Lexeme)
	}
	if tokens[1].Type != EOF {
		t.Errorf("expected EOF after literal, got %s", tokens[1].Type)
	}
}

func TestOperators(t *testing.T) {
	input := `+ ++ += - -- -= * *= / /= \ & ^ << >> = <> < <= > >= ( ) { } , .`
	expected := []TokenType{
		PLUS, INCREMENT, PLUS_EQUAL, MINUS, DECREMENT, MINUS_EQUAL,
		STAR, STAR_EQUAL, SLASH, SLASH_EQUAL, BACKSLASH, AMPERSAND,
		CARET, LEFT_SHIFT, RIGHT_SHIFT, EQUAL, NOT_EQUAL,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestCommentsAreTokens(t *testing.T) {
	input := "Dim x ' trailing note\nDim y"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []TokenType{DIM, IDENTIFIER, COMMENT, NEWLINE, DIM, IDENTIFIER, EOF}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestPositions(t *testing.T) {
	input := "Dim x\nDim y"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("first token at %d:%d, expected 1:1", tokens[0].Position.Line, tokens[0].Position.Column)
	}
	// tokens: DIM x NEWLINE DIM y
	if tokens[3].Position.Line != 2 || tokens[3].Position.Column != 1 {
		t.Errorf("second Dim at %d:%d, expected 2:1", tokens[3].Position.Line, tokens[3].Position.Column)
	}
	if tokens[4].Position.Offset != 10 {
		t.Errorf("y at offset %d, expected 10", tokens[4].Position.Offset)
	}
}
