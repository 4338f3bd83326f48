package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("src/index.js")
	is2 := domain.NewInternedString("src/index.js")

	assert.Equal(t, is1, is2)
	assert.Equal(t, "src/index.js", is1.String())
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.True(t, zero.Empty())
	assert.Empty(t, zero.String())

	empty := domain.NewInternedString("")
	assert.False(t, empty.IsZero())
	assert.True(t, empty.Empty())
}

func TestInternedStringJSON(t *testing.T) {
	original := domain.NewInternedString("chunks/main.js")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `"chunks/main.js"`, string(data))

	var decoded domain.InternedString
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
