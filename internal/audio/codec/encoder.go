package codec

import (
	"opus-codec/internal/audio/config"
	"opus-codec/internal/audio/convert"
)

// Encode compresses one frame of interleaved s16le PCM into a packet of at
// most MaxPacketSize bytes. The returned slice is owned by the caller.
func (c *Codec) Encode(pcm []byte) ([]byte, error) {
	return c.EncodeLimit(pcm, config.MaxPacketSize)
}

// EncodeLimit is Encode with an explicit packet size limit. A non-positive
// limit selects MaxPacketSize; a limit above it is a usage error.
func (c *Codec) EncodeLimit(pcm []byte, maxPacketSize int) ([]byte, error) {
	if maxPacketSize <= 0 {
		maxPacketSize = config.MaxPacketSize
	}
	if maxPacketSize > config.MaxPacketSize {
		return nil, usageError("max packet size %d exceeds buffer capacity %d", maxPacketSize, config.MaxPacketSize)
	}
	if err := c.ensureEncoder(); err != nil {
		return nil, err
	}
	n, err := c.encodeTo(c.outOpus[:maxPacketSize:maxPacketSize], pcm)
	if err != nil {
		return nil, err
	}
	packet := make([]byte, n)
	copy(packet, c.outOpus[:n])
	return packet, nil
}

// EncodeInto writes the packet straight into dst and returns its length.
// The limit is len(dst), capped at MaxPacketSize. Reusing dst across calls
// overwrites the previous packet.
func (c *Codec) EncodeInto(dst, pcm []byte) (int, error) {
	if len(dst) == 0 {
		return 0, usageError("empty destination buffer")
	}
	if err := c.ensureEncoder(); err != nil {
		return 0, err
	}
	m := min(len(dst), config.MaxPacketSize)
	return c.encodeTo(dst[:m:m], pcm)
}

// encodeTo derives the frame size from the PCM length and runs the encoder.
// The engine may use all of cap(out), so callers pass out with cap == len.
// A negative or out of range reported length is a failure, never data.
func (c *Codec) encodeTo(out, pcm []byte) (int, error) {
	channels := c.cfg.Channels
	if !convert.IsFrameAligned(len(pcm), channels) {
		return 0, usageError("pcm length %d is not a multiple of %d", len(pcm), config.BytesPerSample*channels)
	}
	frameSize := len(pcm) / config.BytesPerSample / channels
	if frameSize <= 0 || frameSize > config.MaxFrameSize {
		return 0, c.engineError("encode", statusError("encode", StatusBadArg))
	}

	samples := c.inPcm[:frameSize*channels]
	convert.BytesToInt16Into(samples, pcm)

	n, err := c.encoder.Encode(samples, out)
	if err != nil {
		return 0, c.engineError("encode", err)
	}
	if n < 0 {
		return 0, c.engineError("encode", statusError("encode", n))
	}
	if n > len(out) {
		return 0, c.engineError("encode", statusError("encode", StatusInternalError))
	}
	c.observer.FrameEncoded(n)
	return n, nil
}
