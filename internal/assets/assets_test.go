package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaaray/portfolio/internal/motion"
)

func TestStatic(t *testing.T) {
	for _, name := range []string{Stylesheet, Boot} {
		b, err := fs.ReadFile(Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}
	css, err := fs.ReadFile(Static(), Stylesheet)
	require.NoError(t, err)
	assert.Contains(t, string(css), "."+motion.FallbackClass+" ["+motion.RevealAttr+"]")
	assert.Contains(t, string(css), ".header.is-solid")
	assert.Contains(t, string(css), "."+motion.ReadyClass+" ["+motion.RevealAttr+"]")
}
