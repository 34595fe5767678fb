//go:build cgo

package codec

import (
	"errors"
	"opus-codec/internal/audio/config"

	"gopkg.in/hraban/opus.v2"
)

// OpusEncoder adapts a libopus encoder to EncoderEngine.
type OpusEncoder struct {
	enc *opus.Encoder
}

// Encode limits the packet to len(data); the binding itself reads cap(data).
func (e *OpusEncoder) Encode(pcm []int16, data []byte) (int, error) {
	n, err := e.enc.Encode(pcm, data[:len(data):len(data)])
	if err != nil {
		return 0, fromNative("encode", err)
	}
	if n < 0 {
		return 0, statusError("encode", n)
	}
	return n, nil
}

func (e *OpusEncoder) SetBitrate(bitrate int) error {
	return fromNative("set bitrate", e.enc.SetBitrate(bitrate))
}

func (e *OpusEncoder) Bitrate() (int, error) {
	bitrate, err := e.enc.Bitrate()
	if err != nil {
		return 0, fromNative("get bitrate", err)
	}
	return bitrate, nil
}

// OpusDecoder adapts a libopus decoder to DecoderEngine.
type OpusDecoder struct {
	dec *opus.Decoder
}

func (d *OpusDecoder) Decode(data []byte, pcm []int16) (int, error) {
	n, err := d.dec.Decode(data, pcm)
	if err != nil {
		return 0, fromNative("decode", err)
	}
	if n < 0 {
		return 0, statusError("decode", n)
	}
	return n, nil
}

func (d *OpusDecoder) DecodePLC(pcm []int16) error {
	return fromNative("decode plc", d.dec.DecodePLC(pcm))
}

// fromNative converts errors surfaced by the binding into StatusError.
// Argument checks the binding performs in Go carry no native code and are
// reported as bad arguments, which is what libopus returns for the same input.
func fromNative(op string, err error) error {
	if err == nil {
		return nil
	}
	var oerr opus.Error
	if errors.As(err, &oerr) {
		return statusError(op, int(oerr))
	}
	return statusError(op, StatusBadArg)
}

func opusApplication(app config.Application) opus.Application {
	switch app {
	case config.AppVoIP:
		return opus.AppVoIP
	case config.AppLowDelay:
		return opus.AppRestrictedLowDelay
	default:
		return opus.AppAudio
	}
}
