package parser

// TokenType identifies the lexical class of a Token.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF
	NEWLINE
	COMMENT

	// Identifiers + literals
	IDENTIFIER
	INTEGER_LITERAL
	LONG_LITERAL
	SINGLE_LITERAL
	DOUBLE_LITERAL
	STRING_LITERAL
	INTERP_STRING

	// Keywords
	NAMESPACE
	MODULE
	CLASS
	STRUCTURE
	INTERFACE
	ENUM
	DELEGATE
	SUB
	FUNCTION
	DIM
	CONST
	AS
	NEW
	IF
	THEN
	ELSE
	ELSEIF
	SELECT
	CASE
	FOR
	EACH
	IN
	TO
	STEP
	NEXT
	WHILE
	DO
	LOOP
	UNTIL
	TRY
	CATCH
	FINALLY
	RETURN
	EXIT
	END
	PUBLIC
	PRIVATE
	INHERITS
	IMPLEMENTS
	OF
	NOT
	AND
	OR
	MOD
	CTYPE
	TRUE
	FALSE

	// Compound keywords merged by the scanner
	END_IF
	END_WHILE
	END_SELECT
	END_TRY
	END_SUB
	END_FUNCTION
	END_NAMESPACE
	END_MODULE
	END_CLASS
	END_STRUCTURE
	END_INTERFACE
	END_ENUM

	// Operators
	PLUS
	INCREMENT
	PLUS_EQUAL
	MINUS
	DECREMENT
	MINUS_EQUAL
	STAR
	STAR_EQUAL
	SLASH
	SLASH_EQUAL
	BACKSLASH
	AMPERSAND
	CARET
	LEFT_SHIFT
	RIGHT_SHIFT
	EQUAL
	NOT_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	// Separators
	COMMA
	DOT
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL:         "ILLEGAL",
	EOF:             "EOF",
	NEWLINE:         "NEWLINE",
	COMMENT:         "COMMENT",
	IDENTIFIER:      "IDENTIFIER",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	LONG_LITERAL:    "LONG_LITERAL",
	SINGLE_LITERAL:  "SINGLE_LITERAL",
	DOUBLE_LITERAL:  "DOUBLE_LITERAL",
	STRING_LITERAL:  "STRING_LITERAL",
	INTERP_STRING:   "INTERP_STRING",
	NAMESPACE:       "NAMESPACE",
	MODULE:          "MODULE",
	CLASS:           "CLASS",
	STRUCTURE:       "STRUCTURE",
	INTERFACE:       "INTERFACE",
	ENUM:            "ENUM",
	DELEGATE:        "DELEGATE",
	SUB:             "SUB",
	FUNCTION:        "FUNCTION",
	DIM:             "DIM",
	CONST:           "CONST",
	AS:              "AS",
	NEW:             "NEW",
	IF:              "IF",
	THEN:            "THEN",
	ELSE:            "ELSE",
	ELSEIF:          "ELSEIF",
	SELECT:          "SELECT",
	CASE:            "CASE",
	FOR:             "FOR",
	EACH:            "EACH",
	IN:              "IN",
	TO:              "TO",
	STEP:            "STEP",
	NEXT:            "NEXT",
	WHILE:           "WHILE",
	DO:              "DO",
	LOOP:            "LOOP",
	UNTIL:           "UNTIL",
	TRY:             "TRY",
	CATCH:           "CATCH",
	FINALLY:         "FINALLY",
	RETURN:          "RETURN",
	EXIT:            "EXIT",
	END:             "END",
	PUBLIC:          "PUBLIC",
	PRIVATE:         "PRIVATE",
	INHERITS:        "INHERITS",
	IMPLEMENTS:      "IMPLEMENTS",
	OF:              "OF",
	NOT:             "NOT",
	AND:             "AND",
	OR:              "OR",
	MOD:             "MOD",
	CTYPE:           "CTYPE",
	TRUE:            "TRUE",
	FALSE:           "FALSE",
	END_IF:          "END_IF",
	END_WHILE:       "END_WHILE",
	END_SELECT:      "END_SELECT",
	END_TRY:         "END_TRY",
	END_SUB:         "END_SUB",
	END_FUNCTION:    "END_FUNCTION",
	END_NAMESPACE:   "END_NAMESPACE",
	END_MODULE:      "END_MODULE",
	END_CLASS:       "END_CLASS",
	END_STRUCTURE:   "END_STRUCTURE",
	END_INTERFACE:   "END_INTERFACE",
	END_ENUM:        "END_ENUM",
	PLUS:            "PLUS",
	INCREMENT:       "INCREMENT",
	PLUS_EQUAL:      "PLUS_EQUAL",
	MINUS:           "MINUS",
	DECREMENT:       "DECREMENT",
	MINUS_EQUAL:     "MINUS_EQUAL",
	STAR:            "STAR",
	STAR_EQUAL:      "STAR_EQUAL",
	SLASH:           "SLASH",
	SLASH_EQUAL:     "SLASH_EQUAL",
	BACKSLASH:       "BACKSLASH",
	AMPERSAND:       "AMPERSAND",
	CARET:           "CARET",
	LEFT_SHIFT:      "LEFT_SHIFT",
	RIGHT_SHIFT:     "RIGHT_SHIFT",
	EQUAL:           "EQUAL",
	NOT_EQUAL:       "NOT_EQUAL",
	LESS:            "LESS",
	LESS_EQUAL:      "LESS_EQUAL",
	GREATER:         "GREATER",
	GREATER_EQUAL:   "GREATER_EQUAL",
	COMMA:           "COMMA",
	DOT:             "DOT",
	LEFT_PAREN:      "LEFT_PAREN",
	RIGHT_PAREN:     "RIGHT_PAREN",
	LEFT_BRACE:      "LEFT_BRACE",
	RIGHT_BRACE:     "RIGHT_BRACE",
}

func (tt TokenType) String() string {
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return "TOKEN_TYPE_UNKNOWN"
}

// Position is a location in the input, tracked by the scanner.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is one lexeme with its position. For string literals Lexeme holds
// the decoded value; for everything else it holds the source spelling.
type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}
