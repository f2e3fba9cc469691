package generator

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/schemagen/schemagen/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

var alphanumericRe = regexp.MustCompile(`^[A-Za-z0-9]*$`)

func TestGenerate_IntegerBounds(t *testing.T) {
	g := NewSeeded(1, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeInteger, Minimum: fptr(10), Maximum: fptr(20)}

	for i := 0; i < 200; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)

		n, ok := v.(int64)
		require.True(t, ok, "expected int64, got %T", v)
		assert.GreaterOrEqual(t, n, int64(10))
		assert.LessOrEqual(t, n, int64(20))
	}
}

func TestGenerate_IntegerInclusiveEnds(t *testing.T) {
	// A two-value interval must produce both ends eventually.
	g := NewSeeded(2, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeInteger, Minimum: fptr(0), Maximum: fptr(1)}

	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)
		seen[v.(int64)] = true
	}
	assert.True(t, seen[0], "lower bound never generated")
	assert.True(t, seen[1], "upper bound never generated")
}

func TestGenerate_IntegerDefaultBounds(t *testing.T) {
	g := NewSeeded(3, DefaultOptions())
	v, err := g.Generate(&schema.Schema{Type: schema.TypeInteger})
	require.NoError(t, err)
	_, ok := v.(int64)
	assert.True(t, ok, "expected int64, got %T", v)
}

func TestGenerate_IntegerEmptyRange(t *testing.T) {
	// No integers exist between 1.2 and 1.8.
	g := NewSeeded(4, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeInteger, Minimum: fptr(1.2), Maximum: fptr(1.8)}

	_, err := g.Generate(s)
	var cerr *ConstraintError
	require.ErrorAs(t, err, &cerr)
}

func TestGenerate_NumberBounds(t *testing.T) {
	g := NewSeeded(5, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeNumber, Minimum: fptr(-2.5), Maximum: fptr(2.5)}

	for i := 0; i < 200; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)

		f, ok := v.(float64)
		require.True(t, ok, "expected float64, got %T", v)
		assert.GreaterOrEqual(t, f, -2.5)
		// Upper bound is exclusive.
		assert.Less(t, f, 2.5)
	}
}

func TestGenerate_NumberDefaults(t *testing.T) {
	g := NewSeeded(6, DefaultOptions())
	for i := 0; i < 50; i++ {
		v, err := g.Generate(&schema.Schema{Type: schema.TypeNumber})
		require.NoError(t, err)

		f := v.(float64)
		assert.GreaterOrEqual(t, f, float64(DefaultNumberMin))
		assert.Less(t, f, float64(DefaultNumberMax))
	}
}

func TestGenerate_NumberDegenerateInterval(t *testing.T) {
	g := NewSeeded(7, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeNumber, Minimum: fptr(3.25), Maximum: fptr(3.25)}

	v, err := g.Generate(s)
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)
}

func TestGenerate_StringLengthAndAlphabet(t *testing.T) {
	g := NewSeeded(8, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeString, MinLength: iptr(5), MaxLength: iptr(10)}

	for i := 0; i < 200; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)

		str, ok := v.(string)
		require.True(t, ok, "expected string, got %T", v)
		assert.GreaterOrEqual(t, len(str), 5)
		assert.LessOrEqual(t, len(str), 10)
		assert.Regexp(t, alphanumericRe, str)
	}
}

func TestGenerate_StringDefaultSpread(t *testing.T) {
	g := NewSeeded(9, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeString, MinLength: iptr(3)}

	for i := 0; i < 100; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)

		str := v.(string)
		assert.GreaterOrEqual(t, len(str), 3)
		assert.LessOrEqual(t, len(str), 3+DefaultStringSpread)
	}
}

func TestGenerate_Boolean(t *testing.T) {
	g := NewSeeded(10, DefaultOptions())
	seen := map[bool]bool{}
	for i := 0; i < 100; i++ {
		v, err := g.Generate(&schema.Schema{Type: schema.TypeBoolean})
		require.NoError(t, err)

		b, ok := v.(bool)
		require.True(t, ok, "expected bool, got %T", v)
		seen[b] = true
	}
	assert.True(t, seen[true] && seen[false], "both boolean values should appear")
}

func TestGenerate_EnumMembership(t *testing.T) {
	g := NewSeeded(11, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeString, Enum: []any{"red", "green", "blue"}}

	seen := map[any]bool{}
	for i := 0; i < 100; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)
		assert.Contains(t, s.Enum, v)
		seen[v] = true
	}
	// All three members should show up over 100 draws.
	assert.Len(t, seen, 3)
}

func TestGenerate_EnumOverridesType(t *testing.T) {
	// Declared type integer, but the enum wins.
	g := NewSeeded(12, DefaultOptions())
	s := &schema.Schema{Type: schema.TypeInteger, Enum: []any{"only"}}

	v, err := g.Generate(s)
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}

func TestGenerate_EmptyEnum(t *testing.T) {
	g := NewSeeded(13, DefaultOptions())
	_, err := g.Generate(&schema.Schema{Type: schema.TypeString, Enum: []any{}})
	assert.ErrorIs(t, err, ErrEmptyEnum)
}

func TestGenerate_UnknownTypeYieldsNull(t *testing.T) {
	g := NewSeeded(14, DefaultOptions())

	for _, typ := range []string{"", "uuid", "date"} {
		v, err := g.Generate(&schema.Schema{Type: typ})
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestGenerate_NilSchemaYieldsNull(t *testing.T) {
	g := NewSeeded(15, DefaultOptions())
	v, err := g.Generate(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGenerate_Deterministic(t *testing.T) {
	s := &schema.Schema{
		Type: schema.TypeObject,
		Properties: map[string]*schema.Schema{
			"id":    {Type: schema.TypeInteger, Minimum: fptr(1), Maximum: fptr(1000)},
			"name":  {Type: schema.TypeString, MinLength: iptr(3), MaxLength: iptr(12)},
			"score": {Type: schema.TypeNumber, Minimum: fptr(0), Maximum: fptr(1)},
			"tags": {
				Type:  schema.TypeArray,
				Items: &schema.Schema{Enum: []any{"a", "b", "c", "d"}},
			},
		},
		Required: []string{"id"},
	}

	a := NewSeeded(42, DefaultOptions())
	b := NewSeeded(42, DefaultOptions())

	for i := 0; i < 20; i++ {
		va, err := a.Generate(s)
		require.NoError(t, err)
		vb, err := b.Generate(s)
		require.NoError(t, err)
		assert.Equal(t, va, vb, "same seed must generate identical documents")
	}
}

func TestGenerate_DoesNotMutateSchema(t *testing.T) {
	build := func() *schema.Schema {
		return &schema.Schema{
			Type: schema.TypeObject,
			Properties: map[string]*schema.Schema{
				"items": {
					Type:        schema.TypeArray,
					MinItems:    iptr(1),
					MaxItems:    iptr(4),
					UniqueItems: true,
					Items:       &schema.Schema{Type: schema.TypeInteger, Minimum: fptr(0), Maximum: fptr(50)},
				},
			},
			Required: []string{"items"},
		}
	}

	s := build()
	g := NewSeeded(16, DefaultOptions())
	for i := 0; i < 10; i++ {
		_, err := g.Generate(s)
		require.NoError(t, err)
	}

	assert.True(t, reflect.DeepEqual(build(), s), "schema must not be mutated by generation")
}
