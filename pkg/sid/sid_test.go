package sid

import (
	"testing"
	
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenStringUnique(t *testing.T) {
	s := NewSid()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := s.GenString()
		require.NoError(t, err)
		require.NotEmpty(t, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
