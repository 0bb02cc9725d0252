package types

import "strings"

// TypeKind classifies a TypeInfo.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindVoid
	KindClass
	KindStructure
	KindInterface
	KindEnum
	KindDelegate
	KindArray
	KindPointer
	KindGeneric
)

var kindNames = map[TypeKind]string{
	KindPrimitive: "primitive",
	KindVoid:      "void",
	KindClass:     "class",
	KindStructure: "structure",
	KindInterface: "interface",
	KindEnum:      "enum",
	KindDelegate:  "delegate",
	KindArray:     "array",
	KindPointer:   "pointer",
	KindGeneric:   "generic",
}

func (k TypeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// TypeInfo describes one type. Named types live in the Catalog; array,
// pointer, and generic types are built structurally on demand and cached,
// so pointer equality works for identity checks everywhere.
type TypeInfo struct {
	Name string
	Kind TypeKind

	// Element and Rank describe arrays; Element doubles as the pointee
	// for pointer types.
	Element *TypeInfo
	Rank    int

	// Args holds generic type arguments, e.g. the String in List(Of String).
	Args []*TypeInfo

	// Base and Interfaces describe a class's inheritance.
	Base       *TypeInfo
	Interfaces []*TypeInfo

	Members []*Member
}

// MemberKind classifies a composite type's member.
type MemberKind int

const (
	FieldMember MemberKind = iota
	ConstantMember
	MethodMember
)

// Member is one field, constant, or method of a composite type.
type Member struct {
	Name   string
	Kind   MemberKind
	Type   *TypeInfo   // field/constant type, or method return type (nil for Sub)
	Params []*TypeInfo // methods only
}

// Member finds a member by case-insensitive name.
func (t *TypeInfo) Member(name string) *Member {
	for _, m := range t.Members {
		if strings.EqualFold(m.Name, name) {
			return m
		}
	}
	return nil
}

func (t *TypeInfo) String() string {
	switch t.Kind {
	case KindArray:
		return t.Element.String() + "(" + strings.Repeat(",", t.Rank-1) + ")"
	case KindPointer:
		return t.Element.String() + "^"
	case KindGeneric:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}
		return t.Name + "(Of " + strings.Join(parts, ", ") + ")"
	default:
		return t.Name
	}
}

// IsNumeric reports whether the type takes part in widening promotion.
func (t *TypeInfo) IsNumeric() bool {
	_, ok := numericRank[strings.ToLower(t.Name)]
	return ok && t.Kind == KindPrimitive
}

// numericRank orders the numeric primitives for widening: a value converts
// implicitly only to a type of higher rank.
var numericRank = map[string]int{
	"integer": 1,
	"long":    2,
	"single":  3,
	"double":  4,
}
