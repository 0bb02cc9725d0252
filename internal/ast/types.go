package ast

// NodeType tags every AST node with its concrete kind so tooling can
// switch on nodes without reflection.
type NodeType int

const (
	ILLEGAL NodeType = iota

	// Compilation unit
	FILE
	IDENT
	TYPE_REF
	PARAM

	// Declarations
	NAMESPACE_DECL
	MODULE_DECL
	CLASS_DECL
	STRUCTURE_DECL
	INTERFACE_DECL
	ENUM_DECL
	ENUM_MEMBER
	DELEGATE_DECL
	FUNCTION_DECL
	DIM_DECL
	CONST_DECL

	// Statements
	BLOCK_STMT
	IF_STMT
	ELSEIF_CLAUSE
	SELECT_STMT
	CASE_CLAUSE
	FOR_STMT
	FOR_EACH_STMT
	WHILE_STMT
	DO_STMT
	TRY_STMT
	CATCH_CLAUSE
	RETURN_STMT
	EXIT_STMT
	ASSIGN_STMT
	EXPR_STMT

	// Expressions
	LITERAL_EXPR
	IDENT_EXPR
	BINARY_EXPR
	UNARY_EXPR
	MEMBER_EXPR
	CALL_EXPR
	NEW_EXPR
	CAST_EXPR
	ARRAY_LITERAL_EXPR
	INC_DEC_EXPR
	DEREF_EXPR
	PAREN_EXPR
	INTERP_STRING_EXPR
)

var nodeTypeNames = map[NodeType]string{
	ILLEGAL:            "ILLEGAL",
	FILE:               "FILE",
	IDENT:              "IDENT",
	TYPE_REF:           "TYPE_REF",
	PARAM:              "PARAM",
	NAMESPACE_DECL:     "NAMESPACE_DECL",
	MODULE_DECL:        "MODULE_DECL",
	CLASS_DECL:         "CLASS_DECL",
	STRUCTURE_DECL:     "STRUCTURE_DECL",
	INTERFACE_DECL:     "INTERFACE_DECL",
	ENUM_DECL:          "ENUM_DECL",
	ENUM_MEMBER:        "ENUM_MEMBER",
	DELEGATE_DECL:      "DELEGATE_DECL",
	FUNCTION_DECL:      "FUNCTION_DECL",
	DIM_DECL:           "DIM_DECL",
	CONST_DECL:         "CONST_DECL",
	BLOCK_STMT:         "BLOCK_STMT",
	IF_STMT:            "IF_STMT",
	ELSEIF_CLAUSE:      "ELSEIF_CLAUSE",
	SELECT_STMT:        "SELECT_STMT",
	CASE_CLAUSE:        "CASE_CLAUSE",
	FOR_STMT:           "FOR_STMT",
	FOR_EACH_STMT:      "FOR_EACH_STMT",
	WHILE_STMT:         "WHILE_STMT",
	DO_STMT:            "DO_STMT",
	TRY_STMT:           "TRY_STMT",
	CATCH_CLAUSE:       "CATCH_CLAUSE",
	RETURN_STMT:        "RETURN_STMT",
	EXIT_STMT:          "EXIT_STMT",
	ASSIGN_STMT:        "ASSIGN_STMT",
	EXPR_STMT:          "EXPR_STMT",
	LITERAL_EXPR:       "LITERAL_EXPR",
	IDENT_EXPR:         "IDENT_EXPR",
	BINARY_EXPR:        "BINARY_EXPR",
	UNARY_EXPR:         "UNARY_EXPR",
	MEMBER_EXPR:        "MEMBER_EXPR",
	CALL_EXPR:          "CALL_EXPR",
	NEW_EXPR:           "NEW_EXPR",
	CAST_EXPR:          "CAST_EXPR",
	ARRAY_LITERAL_EXPR: "ARRAY_LITERAL_EXPR",
	INC_DEC_EXPR:       "INC_DEC_EXPR",
	DEREF_EXPR:         "DEREF_EXPR",
	PAREN_EXPR:         "PAREN_EXPR",
	INTERP_STRING_EXPR: "INTERP_STRING_EXPR",
}

func (nt NodeType) String() string {
	if name, ok := nodeTypeNames[nt]; ok {
		return name
	}
	return "NODE_TYPE_UNKNOWN"
}
