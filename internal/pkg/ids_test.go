package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: two ids are generated
	first := GenerateGameID()
	second := GenerateGameID()

	// Then: both are valid v4 uuids and differ
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, second)
}
