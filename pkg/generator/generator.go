package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/schemagen/schemagen/pkg/schema"
)

// Default bounds applied when a schema omits them.
const (
	// DefaultNumberMin and DefaultNumberMax bound "number" nodes without
	// explicit minimum/maximum.
	DefaultNumberMin = -1e10
	DefaultNumberMax = 1e10

	// DefaultStringSpread is added to minLength when maxLength is absent.
	DefaultStringSpread = 20

	// DefaultArraySpread is added to minItems when maxItems is absent.
	DefaultArraySpread = 10
)

// Options holds the generation policy knobs.
type Options struct {
	// OptionalProbability is the chance that a non-required object
	// property is included in the output. Zero means optional properties
	// are never emitted.
	OptionalProbability float64

	// MaxUniqueAttempts caps rejection sampling for uniqueItems arrays.
	// After this many consecutive rejected candidates for a single slot,
	// generation fails with a ConstraintError. Zero disables the cap and
	// restores the original generate-until-distinct behavior, which never
	// terminates when the schema asks for more unique items than the item
	// domain supports.
	MaxUniqueAttempts int
}

// DefaultOptions returns the documented default policy.
func DefaultOptions() Options {
	return Options{
		OptionalProbability: 0.7,
		MaxUniqueAttempts:   1000,
	}
}

// Generator generates values conforming to schema nodes.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

// New creates a Generator seeded from the current time.
func New(opts Options) *Generator {
	return NewSeeded(time.Now().UnixNano(), opts)
}

// NewSeeded creates a Generator with an explicit seed. Output is fully
// deterministic for a fixed seed, schema, and Options.
func NewSeeded(seed int64, opts Options) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		opts: opts,
	}
}

// Generate produces one value conforming to the schema node.
//
// An enum, when present, takes precedence over type-based generation. An
// unrecognized or missing type yields (nil, nil) - null output, not an
// error. The schema is never mutated; every call allocates a fresh value
// tree (enum members are the one exception: the chosen member is returned
// as-is).
func (g *Generator) Generate(s *schema.Schema) (any, error) {
	if s == nil {
		return nil, nil
	}

	if s.Enum != nil {
		if len(s.Enum) == 0 {
			return nil, ErrEmptyEnum
		}
		return s.Enum[g.rng.Intn(len(s.Enum))], nil
	}

	switch s.Type {
	case schema.TypeInteger:
		return g.integer(s)
	case schema.TypeNumber:
		return g.number(s)
	case schema.TypeString:
		return g.text(s)
	case schema.TypeBoolean:
		return g.rng.Intn(2) == 1, nil
	case schema.TypeArray:
		return g.array(s)
	case schema.TypeObject:
		return g.object(s)
	default:
		// Unknown type degrades to null, not an error.
		return nil, nil
	}
}

// uint64n returns a uniform value in [0, n). n == 0 is treated as the full
// uint64 range. Uses rejection to avoid modulo bias.
func (g *Generator) uint64n(n uint64) uint64 {
	if n == 0 {
		return g.rng.Uint64()
	}
	if n&(n-1) == 0 {
		return g.rng.Uint64() & (n - 1)
	}
	limit := math.MaxUint64 - math.MaxUint64%n
	v := g.rng.Uint64()
	for v >= limit {
		v = g.rng.Uint64()
	}
	return v % n
}
