//go:build cgo

package codec

import (
	"opus-codec/internal/audio/config"

	"gopkg.in/hraban/opus.v2"
)

// OpusFactory builds engines backed by libopus.
type OpusFactory struct{}

// NewEncoder создает libopus encoder для конфигурации
func (OpusFactory) NewEncoder(cfg config.CodecConfig) (EncoderEngine, error) {
	enc, err := opus.NewEncoder(cfg.SampleRate, cfg.Channels, opusApplication(cfg.Application))
	if err != nil {
		return nil, fromNative("encoder create", err)
	}
	return &OpusEncoder{enc: enc}, nil
}

// NewDecoder создает libopus decoder для конфигурации
func (OpusFactory) NewDecoder(cfg config.CodecConfig) (DecoderEngine, error) {
	dec, err := opus.NewDecoder(cfg.SampleRate, cfg.Channels)
	if err != nil {
		return nil, fromNative("decoder create", err)
	}
	return &OpusDecoder{dec: dec}, nil
}
