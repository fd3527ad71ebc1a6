package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoIDGenerator(t *testing.T) {
	gen := NewNanoIDGenerator()

	seen := make(map[string]struct{}, 200)
	for i := 0; i < 200; i++ {
		id, err := gen.NewID()
		require.NoError(t, err)
		assert.Len(t, id, DefaultLength)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(DefaultAlphabet, r), "unexpected rune %q", r)
		}
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
