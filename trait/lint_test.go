package trait_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mediacreation/internal/emit"
)

// The accessor helpers are called from generated code and are documented
// like it.
func TestAccessorsDocumented(t *testing.T) {
	for _, name := range []string{"value.go", "access.go"} {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		diags, err := emit.Lint(src, name)
		require.NoError(t, err)
		assert.Empty(t, diags, name)
	}
}
