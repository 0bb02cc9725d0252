package types

import (
	"fmt"
	"strings"
)

// Catalog is the set of types known to one compilation. Named lookups are
// case-insensitive. Structural types (arrays, pointers, generics) are
// interned so repeated requests return the same *TypeInfo.
type Catalog struct {
	named    map[string]*TypeInfo
	arrays   map[string]*TypeInfo
	pointers map[*TypeInfo]*TypeInfo
	generics map[string]*TypeInfo
}

func NewCatalog() *Catalog {
	c := &Catalog{
		named:    make(map[string]*TypeInfo),
		arrays:   make(map[string]*TypeInfo),
		pointers: make(map[*TypeInfo]*TypeInfo),
		generics: make(map[string]*TypeInfo),
	}
	c.registerBuiltins()
	return c
}

// Define registers a named type. It returns false when a type of that name
// already exists; redefinition is the caller's error to report.
func (c *Catalog) Define(t *TypeInfo) bool {
	key := strings.ToLower(t.Name)
	if _, exists := c.named[key]; exists {
		return false
	}
	c.named[key] = t
	return true
}

// Get resolves a named type, or nil when unknown.
func (c *Catalog) Get(name string) *TypeInfo {
	return c.named[strings.ToLower(name)]
}

// ArrayOf returns the array type of the given element and rank.
func (c *Catalog) ArrayOf(element *TypeInfo, rank int) *TypeInfo {
	key := fmt.Sprintf("%s:%d", element.String(), rank)
	if t, ok := c.arrays[key]; ok {
		return t
	}
	t := &TypeInfo{
		Name:    element.Name,
		Kind:    KindArray,
		Element: element,
		Rank:    rank,
	}
	c.arrays[key] = t
	return t
}

// PointerOf returns the pointer type to the given base.
func (c *Catalog) PointerOf(base *TypeInfo) *TypeInfo {
	if t, ok := c.pointers[base]; ok {
		return t
	}
	t := &TypeInfo{
		Name:    base.Name,
		Kind:    KindPointer,
		Element: base,
	}
	c.pointers[base] = t
	return t
}

// GenericOf returns the instantiation of a generic type name with the given
// arguments. The name itself does not need a prior declaration.
func (c *Catalog) GenericOf(name string, args []*TypeInfo) *TypeInfo {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	key := strings.ToLower(name) + "(" + strings.Join(parts, ",") + ")"
	if t, ok := c.generics[key]; ok {
		return t
	}
	t := &TypeInfo{
		Name: name,
		Kind: KindGeneric,
		Args: args,
	}
	c.generics[key] = t
	return t
}

// IsAssignableFrom reports whether a value of type source can be stored in
// a location of type target without an explicit conversion: identical
// types, numeric widening, or an upcast to a base class or implemented
// interface.
func (c *Catalog) IsAssignableFrom(target, source *TypeInfo) bool {
	if target == nil || source == nil {
		return false
	}
	if target == source {
		return true
	}

	if target.IsNumeric() && source.IsNumeric() {
		return numericRank[strings.ToLower(source.Name)] <= numericRank[strings.ToLower(target.Name)]
	}

	// Enums store as their underlying integer.
	if source.Kind == KindEnum && target.IsNumeric() {
		return true
	}

	if source.Kind == KindClass {
		for base := source.Base; base != nil; base = base.Base {
			if base == target {
				return true
			}
		}
		if target.Kind == KindInterface {
			for t := source; t != nil; t = t.Base {
				for _, iface := range t.Interfaces {
					if iface == target {
						return true
					}
				}
			}
		}
	}

	return false
}

// CommonType returns the type both operands widen to, or nil when the
// operands cannot meet. Integer + Double is Double; mixing numerics always
// picks the wider side.
func (c *Catalog) CommonType(a, b *TypeInfo) *TypeInfo {
	if a == nil || b == nil {
		return nil
	}
	if a == b {
		return a
	}
	if a.IsNumeric() && b.IsNumeric() {
		if numericRank[strings.ToLower(a.Name)] >= numericRank[strings.ToLower(b.Name)] {
			return a
		}
		return b
	}
	if c.IsAssignableFrom(a, b) {
		return a
	}
	if c.IsAssignableFrom(b, a) {
		return b
	}
	return nil
}

// AreCompatible is the weaker, comparison-only relation: two values can be
// compared whenever either assigns to the other or both are numeric.
func (c *Catalog) AreCompatible(a, b *TypeInfo) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if a.IsNumeric() && b.IsNumeric() {
		return true
	}
	return c.IsAssignableFrom(a, b) || c.IsAssignableFrom(b, a)
}
