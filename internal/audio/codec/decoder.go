package codec

import (
	"opus-codec/internal/audio/config"
	"opus-codec/internal/audio/convert"
)

// Decode decompresses one packet into interleaved s16le PCM owned by the
// caller. Failures are always returned as errors, never as partial data.
func (c *Codec) Decode(packet []byte) ([]byte, error) {
	samples, err := c.decode(packet)
	if err != nil {
		return nil, err
	}
	pcm := make([]byte, samples*c.cfg.Channels*config.BytesPerSample)
	convert.Int16ToBytesInto(pcm, c.outPcm[:samples*c.cfg.Channels])
	return pcm, nil
}

// DecodeInto writes the decoded PCM into dst and returns the byte count.
// If dst is too small the packet is still consumed by the decoder and
// ErrBufferTooSmall is returned.
func (c *Codec) DecodeInto(dst, packet []byte) (int, error) {
	samples, err := c.decode(packet)
	if err != nil {
		return 0, err
	}
	need := samples * c.cfg.Channels * config.BytesPerSample
	if len(dst) < need {
		return 0, c.engineError("decode", statusError("decode", StatusBufferTooSmall))
	}
	return convert.Int16ToBytesInto(dst, c.outPcm[:samples*c.cfg.Channels]), nil
}

// LastDecodedSamples is the per-channel sample count of the last successful decode.
func (c *Codec) LastDecodedSamples() int {
	return c.lastDecoded
}

// decode runs the decoder with FEC disabled into the shared PCM buffer and
// returns samples per channel. An empty packet goes through loss
// concealment and fills the whole buffer.
func (c *Codec) decode(packet []byte) (int, error) {
	if err := c.ensureDecoder(); err != nil {
		return 0, err
	}

	var (
		n   int
		err error
	)
	if len(packet) == 0 {
		err = c.decoder.DecodePLC(c.outPcm)
		n = config.MaxFrameSize
	} else {
		n, err = c.decoder.Decode(packet, c.outPcm)
	}
	if err != nil {
		return 0, c.engineError("decode", err)
	}
	if n < 0 {
		return 0, c.engineError("decode", statusError("decode", n))
	}
	if n > config.MaxFrameSize {
		return 0, c.engineError("decode", statusError("decode", StatusInternalError))
	}
	c.lastDecoded = n
	c.observer.FrameDecoded(n)
	return n, nil
}
