package codec

import (
	"encoding/binary"
	"opus-codec/internal/audio/config"
	"opus-codec/internal/audio/convert"
)

// fakeEncoder writes a 4 byte packet: frame size and first sample, both LE.
// With padTo set the packet grows to padTo bytes, truncated to cap(data)
// the way libopus honours max_data_bytes through the binding.
type fakeEncoder struct {
	cfg     config.CodecConfig
	bitrate int
	padTo   int
	forceN  int
	err     error
	closed  int
}

func (e *fakeEncoder) Encode(pcm []int16, data []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.forceN != 0 {
		return e.forceN, nil
	}
	frame := len(pcm) / e.cfg.Channels
	if !convert.IsFrameSizeValid(e.cfg.SampleRate, frame) {
		return 0, statusError("encode", StatusBadArg)
	}
	limit := cap(data)
	if limit < 4 {
		return 0, statusError("encode", StatusBufferTooSmall)
	}
	data = data[:limit]
	binary.LittleEndian.PutUint16(data, uint16(frame))
	binary.LittleEndian.PutUint16(data[2:], uint16(pcm[0]))
	n := max(4, min(e.padTo, limit))
	for i := 4; i < n; i++ {
		data[i] = 0xaa
	}
	return n, nil
}

// SetBitrate follows OPUS_SET_BITRATE: positive values are clamped,
// OPUS_AUTO and OPUS_BITRATE_MAX are accepted, anything else is rejected.
func (e *fakeEncoder) SetBitrate(bitrate int) error {
	switch {
	case bitrate == opusAuto:
		e.bitrate = config.DefaultBitrate
	case bitrate == opusBitrateMax:
		e.bitrate = 512000
	case bitrate <= 0:
		return statusError("set bitrate", StatusBadArg)
	default:
		e.bitrate = min(max(bitrate, 500), 512000)
	}
	return nil
}

func (e *fakeEncoder) Bitrate() (int, error) {
	return e.bitrate, nil
}

func (e *fakeEncoder) Close() error {
	e.closed++
	return nil
}

// fakeDecoder reverses fakeEncoder: every sample of the frame is set to the
// packet's recorded first sample.
type fakeDecoder struct {
	cfg    config.CodecConfig
	err    error
	plc    int
	closed int
}

func (d *fakeDecoder) Decode(data []byte, pcm []int16) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	if len(data) != 4 {
		return 0, statusError("decode", StatusInvalidPacket)
	}
	frame := int(binary.LittleEndian.Uint16(data))
	if frame == 0 {
		return 0, statusError("decode", StatusInvalidPacket)
	}
	if frame*d.cfg.Channels > len(pcm) {
		return 0, statusError("decode", StatusBufferTooSmall)
	}
	v := int16(binary.LittleEndian.Uint16(data[2:]))
	for i := 0; i < frame*d.cfg.Channels; i++ {
		pcm[i] = v
	}
	return frame, nil
}

func (d *fakeDecoder) DecodePLC(pcm []int16) error {
	d.plc++
	clear(pcm)
	return nil
}

func (d *fakeDecoder) Close() error {
	d.closed++
	return nil
}

const (
	opusAuto       = -1000
	opusBitrateMax = -1
)

type fakeFactory struct {
	encErr, decErr error
	encoders       []*fakeEncoder
	decoders       []*fakeDecoder
	encCalls       int
	decCalls       int
}

func (f *fakeFactory) NewEncoder(cfg config.CodecConfig) (EncoderEngine, error) {
	f.encCalls++
	if f.encErr != nil {
		return nil, f.encErr
	}
	enc := &fakeEncoder{cfg: cfg, bitrate: config.DefaultBitrate}
	f.encoders = append(f.encoders, enc)
	return enc, nil
}

func (f *fakeFactory) NewDecoder(cfg config.CodecConfig) (DecoderEngine, error) {
	f.decCalls++
	if f.decErr != nil {
		return nil, f.decErr
	}
	dec := &fakeDecoder{cfg: cfg}
	f.decoders = append(f.decoders, dec)
	return dec, nil
}

type event struct {
	name string
	kind EngineKind
	n    int
}

type recordingObserver struct {
	events []event
}

func (o *recordingObserver) EngineCreated(kind EngineKind) {
	o.events = append(o.events, event{name: "created", kind: kind})
}

func (o *recordingObserver) EngineFailed(kind EngineKind, _ error) {
	o.events = append(o.events, event{name: "failed", kind: kind})
}

func (o *recordingObserver) FrameEncoded(bytes int) {
	o.events = append(o.events, event{name: "encoded", n: bytes})
}

func (o *recordingObserver) FrameDecoded(samples int) {
	o.events = append(o.events, event{name: "decoded", n: samples})
}

func (o *recordingObserver) CodecError(op string, _ error) {
	o.events = append(o.events, event{name: "error:" + op})
}

// pcmFrame returns a frame of ms milliseconds with every sample set to v.
func pcmFrame(cfg config.CodecConfig, ms int, v int16) []byte {
	samples := make([]int16, cfg.SampleRate/1000*ms*cfg.Channels)
	for i := range samples {
		samples[i] = v
	}
	return convert.Int16ToBytes(samples)
}
