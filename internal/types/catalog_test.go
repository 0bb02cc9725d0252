package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	c := NewCatalog()
	assert.Same(t, c.Integer(), c.Get("INTEGER"))
	assert.Same(t, c.Integer(), c.Get("integer"))
	assert.Nil(t, c.Get("NoSuchType"))
}

func TestDefineRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	assert.True(t, c.Define(&TypeInfo{Name: "Account", Kind: KindClass}))
	assert.False(t, c.Define(&TypeInfo{Name: "Account", Kind: KindClass}))
	assert.False(t, c.Define(&TypeInfo{Name: "ACCOUNT", Kind: KindStructure}),
		"case difference is still a duplicate")
	assert.False(t, c.Define(&TypeInfo{Name: "Integer", Kind: KindClass}),
		"builtins cannot be redefined")
}

func TestStructuralTypesAreInterned(t *testing.T) {
	c := NewCatalog()

	a1 := c.ArrayOf(c.Integer(), 1)
	a2 := c.ArrayOf(c.Integer(), 1)
	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, c.ArrayOf(c.Integer(), 2))
	assert.NotSame(t, a1, c.ArrayOf(c.Double(), 1))

	p1 := c.PointerOf(c.Double())
	p2 := c.PointerOf(c.Double())
	assert.Same(t, p1, p2)

	g1 := c.GenericOf("List", []*TypeInfo{c.StringType()})
	g2 := c.GenericOf("List", []*TypeInfo{c.StringType()})
	assert.Same(t, g1, g2)
	assert.NotSame(t, g1, c.GenericOf("List", []*TypeInfo{c.Integer()}))
}

func TestNumericWidening(t *testing.T) {
	c := NewCatalog()

	assert.True(t, c.IsAssignableFrom(c.Long(), c.Integer()))
	assert.True(t, c.IsAssignableFrom(c.Double(), c.Integer()))
	assert.True(t, c.IsAssignableFrom(c.Double(), c.Single()))
	assert.False(t, c.IsAssignableFrom(c.Integer(), c.Double()), "narrowing needs CType")
	assert.False(t, c.IsAssignableFrom(c.Integer(), c.StringType()))

	assert.Same(t, c.Double(), c.CommonType(c.Integer(), c.Double()))
	assert.Same(t, c.Double(), c.CommonType(c.Double(), c.Integer()))
	assert.Same(t, c.Long(), c.CommonType(c.Integer(), c.Long()))
	assert.Same(t, c.StringType(), c.CommonType(c.StringType(), c.StringType()))
	assert.Nil(t, c.CommonType(c.StringType(), c.Integer()))
}

func TestClassAssignability(t *testing.T) {
	c := NewCatalog()

	auditable := &TypeInfo{Name: "IAuditable", Kind: KindInterface}
	account := &TypeInfo{Name: "Account", Kind: KindClass, Interfaces: []*TypeInfo{auditable}}
	savings := &TypeInfo{Name: "SavingsAccount", Kind: KindClass, Base: account}
	require.True(t, c.Define(auditable))
	require.True(t, c.Define(account))
	require.True(t, c.Define(savings))

	assert.True(t, c.IsAssignableFrom(account, savings), "upcast to base")
	assert.False(t, c.IsAssignableFrom(savings, account), "no downcast")
	assert.True(t, c.IsAssignableFrom(auditable, savings), "interface via inherited base")
	assert.True(t, c.IsAssignableFrom(auditable, account))
}

func TestCompatibilityIsWiderThanAssignability(t *testing.T) {
	c := NewCatalog()

	// Comparison permits either direction of the numeric relation.
	assert.True(t, c.AreCompatible(c.Integer(), c.Double()))
	assert.True(t, c.AreCompatible(c.Double(), c.Integer()))
	assert.True(t, c.AreCompatible(c.Boolean(), c.Boolean()))
	assert.False(t, c.AreCompatible(c.Boolean(), c.Integer()))
	assert.False(t, c.AreCompatible(c.StringType(), c.Double()))
}

func TestTypeRendering(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, "Integer()", c.ArrayOf(c.Integer(), 1).String())
	assert.Equal(t, "Double(,)", c.ArrayOf(c.Double(), 2).String())
	assert.Equal(t, "Integer^", c.PointerOf(c.Integer()).String())
	assert.Equal(t, "List(Of String)", c.GenericOf("List", []*TypeInfo{c.StringType()}).String())
}

func TestMemberLookupIsCaseInsensitive(t *testing.T) {
	c := NewCatalog()
	errClass := c.ErrorClass()
	require.NotNil(t, errClass.Member("Message"))
	assert.Same(t, errClass.Member("Message"), errClass.Member("message"))
	assert.Nil(t, errClass.Member("Detail"))
}
