package cli

import (
	"testing"

	"github.com/schemagen/schemagen/pkg/generator"
	"github.com/schemagen/schemagen/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarterSchema_IsValidAndGenerates(t *testing.T) {
	s := starterSchema()
	require.NoError(t, s.Validate())

	g := generator.NewSeeded(1, generator.DefaultOptions())
	for i := 0; i < 20; i++ {
		v, err := g.Generate(s)
		require.NoError(t, err)

		obj, ok := v.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, obj, "id")
		assert.Contains(t, obj, "name")
	}
}

func TestStarterSchema_RoundTripsThroughYAML(t *testing.T) {
	s := starterSchema()

	data, err := schema.ToYAML(s)
	require.NoError(t, err)

	loaded, err := schema.ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}
