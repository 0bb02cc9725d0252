package stdlib

import "strings"

// The built-in runtime routines every program can call without declaring
// them. The table is constructed once at init and never mutated, so it is
// safe to share across concurrent compilations.

// TypeRef names a type in a routine signature. The analyzer resolves these
// against its catalog; keeping plain names here avoids a dependency cycle.
type TypeRef struct {
	Name string
	Rank int // 0 for scalars, >0 for array parameters
}

// ParameterDefinition is one formal parameter of a runtime routine.
type ParameterDefinition struct {
	Name string
	Type TypeRef
}

// RoutineDefinition is the signature of one runtime routine.
type RoutineDefinition struct {
	Name       string
	Parameters []ParameterDefinition
	ReturnType *TypeRef // nil for Subs
}

func scalar(name string) TypeRef { return TypeRef{Name: name} }

func ret(name string) *TypeRef { return &TypeRef{Name: name} }

func param(name, typeName string) ParameterDefinition {
	return ParameterDefinition{Name: name, Type: scalar(typeName)}
}

var routines = buildRoutines()

func buildRoutines() map[string]RoutineDefinition {
	defs := []RoutineDefinition{
		{Name: "Print", Parameters: []ParameterDefinition{param("value", "String")}},
		{Name: "PrintLine", Parameters: []ParameterDefinition{param("value", "String")}},
		{Name: "Len", Parameters: []ParameterDefinition{param("value", "String")}, ReturnType: ret("Integer")},
		{Name: "Str", Parameters: []ParameterDefinition{param("value", "Double")}, ReturnType: ret("String")},
		{Name: "Val", Parameters: []ParameterDefinition{param("value", "String")}, ReturnType: ret("Double")},
		{Name: "Abs", Parameters: []ParameterDefinition{param("value", "Double")}, ReturnType: ret("Double")},
		{Name: "Sqr", Parameters: []ParameterDefinition{param("value", "Double")}, ReturnType: ret("Double")},
		{Name: "Chr", Parameters: []ParameterDefinition{param("code", "Integer")}, ReturnType: ret("String")},
		{Name: "Asc", Parameters: []ParameterDefinition{param("value", "String")}, ReturnType: ret("Integer")},
		{Name: "Mid", Parameters: []ParameterDefinition{
			param("value", "String"), param("start", "Integer"), param("length", "Integer"),
		}, ReturnType: ret("String")},
		{Name: "InStr", Parameters: []ParameterDefinition{
			param("haystack", "String"), param("needle", "String"),
		}, ReturnType: ret("Integer")},
		{Name: "UCase", Parameters: []ParameterDefinition{param("value", "String")}, ReturnType: ret("String")},
		{Name: "LCase", Parameters: []ParameterDefinition{param("value", "String")}, ReturnType: ret("String")},
		{Name: "UBound", Parameters: []ParameterDefinition{
			{Name: "values", Type: TypeRef{Name: "Integer", Rank: 1}},
		}, ReturnType: ret("Integer")},
	}

	table := make(map[string]RoutineDefinition, len(defs))
	for _, d := range defs {
		table[strings.ToLower(d.Name)] = d
	}
	return table
}

// Lookup finds a runtime routine by case-insensitive name.
func Lookup(name string) (RoutineDefinition, bool) {
	d, ok := routines[strings.ToLower(name)]
	return d, ok
}

// Names returns every routine name, for completion surfaces.
func Names() []string {
	out := make([]string, 0, len(routines))
	for _, d := range routines {
		out = append(out, d.Name)
	}
	return out
}
