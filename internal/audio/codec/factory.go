//go:build !cgo

package codec

import (
	"opus-codec/internal/audio/config"
)

// OpusFactory without cgo cannot reach libopus; every construction fails
// with ErrUnimplemented. Rebuild with CGO_ENABLED=1.
type OpusFactory struct{}

func (OpusFactory) NewEncoder(config.CodecConfig) (EncoderEngine, error) {
	return nil, statusError("encoder create", StatusUnimplemented)
}

func (OpusFactory) NewDecoder(config.CodecConfig) (DecoderEngine, error) {
	return nil, statusError("decoder create", StatusUnimplemented)
}
