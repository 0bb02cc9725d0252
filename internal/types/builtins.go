package types

// The built-in primitives of the language. Each catalog gets its own
// instances so *TypeInfo identity comparisons stay within one compilation.
const (
	IntegerName = "Integer"
	LongName    = "Long"
	SingleName  = "Single"
	DoubleName  = "Double"
	BooleanName = "Boolean"
	StringName  = "String"
	VoidName    = "Void"
	ErrorName   = "Error"
)

func (c *Catalog) registerBuiltins() {
	for _, name := range []string{
		IntegerName, LongName, SingleName, DoubleName, BooleanName, StringName,
	} {
		c.Define(&TypeInfo{Name: name, Kind: KindPrimitive})
	}

	// Void is internal: the result "type" of a Sub. It is registered so the
	// analyzer can hand out a stable instance, but no source program can
	// name it in a declaration.
	c.Define(&TypeInfo{Name: VoidName, Kind: KindVoid})

	// Error is the built-in class bound by Catch clauses.
	errType := &TypeInfo{Name: ErrorName, Kind: KindClass}
	errType.Members = []*Member{
		{Name: "Message", Kind: FieldMember, Type: c.Get(StringName)},
	}
	c.Define(errType)
}

// Integer returns the built-in Integer type.
func (c *Catalog) Integer() *TypeInfo { return c.Get(IntegerName) }

// Long returns the built-in Long type.
func (c *Catalog) Long() *TypeInfo { return c.Get(LongName) }

// Single returns the built-in Single type.
func (c *Catalog) Single() *TypeInfo { return c.Get(SingleName) }

// Double returns the built-in Double type.
func (c *Catalog) Double() *TypeInfo { return c.Get(DoubleName) }

// Boolean returns the built-in Boolean type.
func (c *Catalog) Boolean() *TypeInfo { return c.Get(BooleanName) }

// StringType returns the built-in String type.
func (c *Catalog) StringType() *TypeInfo { return c.Get(StringName) }

// Void returns the internal result type of a Sub.
func (c *Catalog) Void() *TypeInfo { return c.Get(VoidName) }

// ErrorClass returns the built-in Error class.
func (c *Catalog) ErrorClass() *TypeInfo { return c.Get(ErrorName) }
