package domain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/core/domain"
)

func TestContent_Immutable(t *testing.T) {
	raw := []byte("hello")
	c := domain.NewContent(raw)

	raw[0] = 'j'
	assert.Equal(t, "hello", c.String(), "constructor must copy its input")

	out := c.Bytes()
	out[0] = 'y'
	assert.Equal(t, "hello", c.String(), "Bytes must return a copy")
}

func TestContent_EqualAndHash(t *testing.T) {
	a := domain.NewContentString("hello")
	b := domain.NewContent([]byte("hello"))
	c := domain.NewContentString("world")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Len(t, a.Hash(), 16)
	assert.Equal(t, 5, a.Len())
}

func TestContent_Zero(t *testing.T) {
	var zero domain.Content
	assert.Zero(t, zero.Len())
	assert.True(t, zero.Equal(domain.NewContent(nil)))
}

func TestContent_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := domain.NewContentString("payload").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", buf.String())
}
