package chunking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pack/internal/core/chunking"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/pack/internal/core/ports"
)

// staticContext is a chunking context that renders no ECMAScript.
type staticContext struct{}

func (staticContext) Name() string { return "static" }
func (staticContext) ChunkPath(name string) string { return name }
func (staticContext) OutputRoot() string { return "out" }

// customContext opts into nothing and relies on the defaults.
type customContext struct {
	chunking.Defaults
	staticContext
}

func TestDefaults(t *testing.T) {
	var d chunking.Defaults
	assert.False(t, d.HasHotReloadInstrumentation())

	var cc ports.EcmascriptChunkingContext = customContext{}
	assert.False(t, cc.HasHotReloadInstrumentation())
	assert.False(t, chunking.HotReloadEnabled(cc))
}

func TestHotReloadEnabled(t *testing.T) {
	tests := []struct {
		name string
		cc   ports.ChunkingContext
		want bool
	}{
		{name: "production uses the default", cc: chunking.NewProduction("dist"), want: false},
		{name: "development overrides", cc: chunking.NewDevelopment("dist"), want: true},
		{name: "non ecmascript context", cc: staticContext{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunking.HotReloadEnabled(tt.cc))
		})
	}
}

func TestHotReload_OrderIndependent(t *testing.T) {
	prod := chunking.NewProduction("dist")
	dev := chunking.NewDevelopment("dist")

	first := []bool{prod.HasHotReloadInstrumentation(), dev.HasHotReloadInstrumentation()}
	second := []bool{dev.HasHotReloadInstrumentation(), prod.HasHotReloadInstrumentation()}

	assert.Equal(t, []bool{false, true}, first)
	assert.Equal(t, []bool{true, false}, second)

	for range 10 {
		assert.True(t, dev.HasHotReloadInstrumentation())
		assert.False(t, prod.HasHotReloadInstrumentation())
	}
}

func TestNew(t *testing.T) {
	dev, err := chunking.New(domain.StrategyDevelopment, "dist")
	require.NoError(t, err)
	assert.Equal(t, "development", dev.Name())
	assert.Equal(t, "chunks/main.js", dev.ChunkPath("main"))
	assert.Equal(t, "dist", dev.OutputRoot())
	assert.True(t, dev.HasHotReloadInstrumentation())

	prod, err := chunking.New(domain.StrategyProduction, "build")
	require.NoError(t, err)
	assert.Equal(t, "production", prod.Name())
	assert.Equal(t, "build", prod.OutputRoot())
	assert.False(t, prod.HasHotReloadInstrumentation())

	_, err = chunking.New("staging", "dist")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownStrategy.Error())
}
