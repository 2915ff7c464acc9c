package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsRegistry_ReplaceAndKeys(t *testing.T) {
	registry := NewDefaultsRegistry()

	registry.Replace("", []string{"b", "a", "c"})

	// Registration order, not sorted.
	assert.Equal(t, []string{"b", "a", "c"}, registry.Keys(""))

	registry.Replace("", []string{"x"})
	assert.Equal(t, []string{"x"}, registry.Keys(""))
}

func TestDefaultsRegistry_NamespacesAreIndependent(t *testing.T) {
	registry := NewDefaultsRegistry()

	registry.Replace("prod", []string{"timeout"})
	registry.Replace("stage", []string{"greeting"})

	assert.Equal(t, []string{"timeout"}, registry.Keys("prod"))
	assert.Equal(t, []string{"greeting"}, registry.Keys("stage"))
	assert.Empty(t, registry.Keys("unknown"))
}

func TestDefaultsRegistry_CopiesInAndOut(t *testing.T) {
	registry := NewDefaultsRegistry()

	in := []string{"a", "b"}
	registry.Replace("", in)
	in[0] = "mutated"

	out := registry.Keys("")
	assert.Equal(t, []string{"a", "b"}, out)

	out[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, registry.Keys(""))
}

func TestDefaultsRegistry_Reset(t *testing.T) {
	registry := NewDefaultsRegistry()

	registry.Replace("prod", []string{"timeout"})
	registry.Reset()

	assert.Empty(t, registry.Keys("prod"))
}
