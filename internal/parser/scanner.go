package parser

import (
	"fmt"
	"unicode"
)

// Scanner turns source text into a flat token stream in a single
// left-to-right pass, maximal-munch per lexeme.
type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

// ScanError is a lexical error with its source location. Only unterminated
// string literals produce one; every other input lexes to tokens, possibly
// ILLEGAL ones the parser then rejects.
type ScanError struct {
	Message  string
	Position Position
	Length   int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '\\':
		s.addToken(BACKSLASH)
	case '^':
		s.addToken(CARET)
	case '&':
		s.addToken(AMPERSAND)
	case '=':
		s.addToken(EQUAL)

	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()

	case '\'':
		s.scanComment()
	case '"':
		s.scanString()
	case '$':
		s.scanDollar()

	case ' ', '\r', '\t':
		// Ignore horizontal whitespace
	case '\n':
		s.addToken(NEWLINE)

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(INCREMENT)
	} else if s.matchNext('=') {
		s.addToken(PLUS_EQUAL)
	} else {
		s.addToken(PLUS)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(DECREMENT)
	} else if s.matchNext('=') {
		s.addToken(MINUS_EQUAL)
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else if s.matchNext('<') {
		s.addToken(LEFT_SHIFT)
	} else if s.matchNext('>') {
		s.addToken(NOT_EQUAL)
	} else {
		s.addToken(LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(GREATER_EQUAL)
	} else if s.matchNext('>') {
		s.addToken(RIGHT_SHIFT)
	} else {
		s.addToken(GREATER)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.addToken(ILLEGAL)
		s.reportError(fmt.Sprintf("unexpected character: %q", c))
	}
}

// scanComment consumes a ' comment to end of line. Comments become tokens
// so tooling can see them; the parser filters them out before parsing.
func (s *Scanner) scanComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	s.addToken(COMMENT)
}

// scanNumber handles integer, fractional, exponent, and suffix forms. A dot
// starts a fraction only when a digit follows immediately, so "1." lexes as
// the integer 1 followed by a DOT token.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	isFloat := false
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance() // .
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		next := s.peekNext()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(s.peekAt(2))) {
			isFloat = true
			s.advance() // e
			if s.peek() == '+' || s.peek() == '-' {
				s.advance()
			}
			for isDigit(s.peek()) {
				s.advance()
			}
		}
	}

	switch {
	case s.peek() == 'L' || s.peek() == 'l':
		s.advance()
		s.addToken(LONG_LITERAL)
	case s.peek() == 'F' || s.peek() == 'f':
		s.advance()
		s.addToken(SINGLE_LITERAL)
	case isFloat:
		s.addToken(DOUBLE_LITERAL)
	default:
		s.addToken(INTEGER_LITERAL)
	}
}

// scanString consumes a "..." literal and stores the decoded value in the
// token lexeme. Reaching end of input first is fatal; there is no position
// the scan could meaningfully resume from.
func (s *Scanner) scanString() {
	var value []byte
	for !s.isAtEnd() && s.peek() != '"' && s.peek() != '\n' {
		c := s.advance()
		if c == '\\' && !s.isAtEnd() {
			value = append(value, decodeEscape(s.advance()))
		} else {
			value = append(value, c)
		}
	}
	if s.isAtEnd() || s.peek() == '\n' {
		s.reportError("unterminated string literal")
		return
	}
	s.advance() // closing quote
	s.tokens = append(s.tokens, Token{
		Type:     STRING_LITERAL,
		Lexeme:   string(value),
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
	})
}

func decodeEscape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '"':
		return '"'
	default:
		return c
	}
}

// scanDollar recognizes the $" prefix of an interpolated string. A bare $
// is not an operator in the language.
func (s *Scanner) scanDollar() {
	if s.matchNext('"') {
		s.scanInterpolatedString()
		return
	}
	s.addToken(ILLEGAL)
	s.reportError("unexpected character: '$'")
}

// scanInterpolatedString captures the whole $"..." literal verbatim,
// tracking brace depth so that {expr} spans containing nested strings or
// braces survive intact. The parser re-lexes the embedded spans lazily.
func (s *Scanner) scanInterpolatedString() {
	depth := 0
	for !s.isAtEnd() {
		c := s.peek()
		if c == '\n' {
			break
		}
		if depth == 0 && c == '"' {
			s.advance()
			s.addToken(INTERP_STRING)
			return
		}
		switch c {
		case '{':
			depth++
			s.advance()
		case '}':
			if depth > 0 {
				depth--
			}
			s.advance()
		case '"':
			// String literal inside an embedded expression; skip it whole.
			s.advance()
			for !s.isAtEnd() && s.peek() != '"' && s.peek() != '\n' {
				if s.peek() == '\\' {
					s.advance()
				}
				if !s.isAtEnd() {
					s.advance()
				}
			}
			if !s.isAtEnd() && s.peek() == '"' {
				s.advance()
			}
		case '\\':
			s.advance()
			if !s.isAtEnd() {
				s.advance()
			}
		default:
			s.advance()
		}
	}
	s.reportError("unterminated interpolated string literal")
}

// scanIdentifier reads a word and classifies it. When the word is "End" the
// scanner peeks past horizontal whitespace for a second word and checks the
// pair against the compound-keyword table before committing; on no match
// END is emitted alone and the second word lexes normally on the next call.
func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	tokenType := lookupIdentifier(text)

	if tokenType == END {
		if compound, ok := s.tryMergeEndKeyword(); ok {
			s.addToken(compound)
			return
		}
	}

	s.addToken(tokenType)
}

func (s *Scanner) tryMergeEndKeyword() (TokenType, bool) {
	pos := s.current
	for pos < len(s.source) && (s.source[pos] == ' ' || s.source[pos] == '\t') {
		pos++
	}
	wordStart := pos
	for pos < len(s.source) && (isAlpha(s.source[pos]) || isDigit(s.source[pos])) {
		pos++
	}
	if wordStart == pos {
		return ILLEGAL, false
	}
	compound, ok := lookupEndCompound(s.source[wordStart:pos])
	if !ok {
		return ILLEGAL, false
	}
	for s.current < pos {
		s.advance()
	}
	return compound, true
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	return s.peekAt(1)
}

func (s *Scanner) peekAt(n int) byte {
	if s.current+n >= len(s.source) {
		return 0
	}
	return s.source[s.current+n]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}
