package parser

import "strings"

// Keyword recognition is case-insensitive: "End If", "end if" and "END IF"
// all lex identically. Lookups lowercase the candidate before consulting
// the tables, which are never mutated after init.

var keywords = map[string]TokenType{
	"namespace":  NAMESPACE,
	"module":     MODULE,
	"class":      CLASS,
	"structure":  STRUCTURE,
	"interface":  INTERFACE,
	"enum":       ENUM,
	"delegate":   DELEGATE,
	"sub":        SUB,
	"function":   FUNCTION,
	"dim":        DIM,
	"const":      CONST,
	"as":         AS,
	"new":        NEW,
	"if":         IF,
	"then":       THEN,
	"else":       ELSE,
	"elseif":     ELSEIF,
	"select":     SELECT,
	"case":       CASE,
	"for":        FOR,
	"each":       EACH,
	"in":         IN,
	"to":         TO,
	"step":       STEP,
	"next":       NEXT,
	"while":      WHILE,
	"do":         DO,
	"loop":       LOOP,
	"until":      UNTIL,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"return":     RETURN,
	"exit":       EXIT,
	"end":        END,
	"public":     PUBLIC,
	"private":    PRIVATE,
	"inherits":   INHERITS,
	"implements": IMPLEMENTS,
	"of":         OF,
	"not":        NOT,
	"and":        AND,
	"or":         OR,
	"mod":        MOD,
	"ctype":      CTYPE,
	"true":       TRUE,
	"false":      FALSE,
}

// endCompounds maps the second word of an "End X" pair to the merged token.
// "End" is the only word that can start a compound keyword; when the word
// after it is not in this table, END is emitted alone.
var endCompounds = map[string]TokenType{
	"if":        END_IF,
	"while":     END_WHILE,
	"select":    END_SELECT,
	"try":       END_TRY,
	"sub":       END_SUB,
	"function":  END_FUNCTION,
	"namespace": END_NAMESPACE,
	"module":    END_MODULE,
	"class":     END_CLASS,
	"structure": END_STRUCTURE,
	"interface": END_INTERFACE,
	"enum":      END_ENUM,
}

func lookupIdentifier(text string) TokenType {
	if tt, ok := keywords[strings.ToLower(text)]; ok {
		return tt
	}
	return IDENTIFIER
}

func lookupEndCompound(second string) (TokenType, bool) {
	tt, ok := endCompounds[strings.ToLower(second)]
	return tt, ok
}
