package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inkwell/pkg/editor/extensions"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()

	known := builtinNames()
	assert.Len(t, known, len(extensions.Default()))
	for _, name := range []string{"strong", "emphasis", "codespan", "list", "blockquote"} {
		assert.True(t, known[name], "missing %q", name)
	}
}

func TestSelectExtensions_EmptyMeansAll(t *testing.T) {
	t.Parallel()

	selected := selectExtensions(nil)
	defaults := extensions.Default()
	require.Len(t, selected, len(defaults))
	for i, ext := range selected {
		assert.Equal(t, defaults[i].Name(), ext.Name())
	}
}

func TestSelectExtensions_PreservesConfiguredOrder(t *testing.T) {
	t.Parallel()

	selected := selectExtensions([]string{"list", "strong", "emphasis"})
	require.Len(t, selected, 3)
	assert.Equal(t, "list", selected[0].Name())
	assert.Equal(t, "strong", selected[1].Name())
	assert.Equal(t, "emphasis", selected[2].Name())
}
