package codec

import "opus-codec/internal/audio/config"

// EncoderEngine is a realized native encoder state.
// Errors must be *StatusError so callers can classify them.
type EncoderEngine interface {
	Encode(pcm []int16, data []byte) (int, error)
	SetBitrate(bitrate int) error
	Bitrate() (int, error)
}

// DecoderEngine is a realized native decoder state.
type DecoderEngine interface {
	Decode(data []byte, pcm []int16) (int, error)
	// DecodePLC fills pcm with concealment audio for a missing packet.
	DecodePLC(pcm []int16) error
}

// EngineFactory constructs engines from a codec configuration.
type EngineFactory interface {
	NewEncoder(cfg config.CodecConfig) (EncoderEngine, error)
	NewDecoder(cfg config.CodecConfig) (DecoderEngine, error)
}
