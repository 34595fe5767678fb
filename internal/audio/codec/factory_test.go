//go:build !cgo

package codec

import (
	"opus-codec/internal/audio/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpusFactoryWithoutCgo(t *testing.T) {
	c, err := New(config.DefaultCodecConfig())
	require.NoError(t, err)

	_, err = c.Encode(make([]byte, 1920))
	assert.ErrorIs(t, err, ErrConstruction)
	assert.ErrorIs(t, err, ErrUnimplemented)
	assert.False(t, c.EncoderReady())

	_, err = c.Decode([]byte{1})
	assert.ErrorIs(t, err, ErrUnimplemented)
	assert.False(t, c.DecoderReady())
}
