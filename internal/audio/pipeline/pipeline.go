package pipeline

import (
	"context"
	"errors"
	"opus-codec/internal/audio/codec"
	"opus-codec/internal/audio/config"
)

// AddOnPipe adds a processing function to the pipeline.
// q - quit channel to stop the processing
// f - processing function
// in - input channel
// chanBuffer - buffer size for the output channel
// returns output channel, closed when in is drained or q is closed
func AddOnPipe[X, Y any](q <-chan struct{}, f func(X) Y, in <-chan X, chanBuffer int) chan Y {
	out := make(chan Y, chanBuffer)
	go func() {
		defer close(out)
		for {
			select {
			case <-q:
				return
			case data, ok := <-in:
				if !ok {
					return
				}
				result := f(data)
				select {
				case out <- result:
				case <-q:
					return
				}
			}
		}
	}()
	return out
}

// Result is one frame after the encode and decode stages.
type Result struct {
	Index  int
	Input  []byte
	Packet []byte
	PCM    []byte
	Err    error
}

// RoundTrip encodes frames on one codec and decodes the packets on another.
// Each codec is driven by exactly one stage goroutine.
type RoundTrip struct {
	Encoder    *codec.Codec
	Decoder    *codec.Codec
	BufferSize int // channel buffer size in frames
}

// NewRoundTrip creates two independent codecs sharing cfg and opts.
func NewRoundTrip(cfg config.CodecConfig, opts ...codec.Option) (*RoundTrip, error) {
	return newRoundTrip(func() (*codec.Codec, error) {
		return codec.New(cfg, opts...)
	})
}

// newRoundTrip closes the encoder side when the decoder side cannot be built.
func newRoundTrip(newCodec func() (*codec.Codec, error)) (*RoundTrip, error) {
	enc, err := newCodec()
	if err != nil {
		return nil, err
	}
	dec, err := newCodec()
	if err != nil {
		return nil, errors.Join(err, enc.Close())
	}
	return &RoundTrip{Encoder: enc, Decoder: dec, BufferSize: 16}, nil
}

// Run starts the stages and returns results in input order. The output
// channel closes when frames is closed and drained or ctx is done.
// The codecs must not be used elsewhere until the output channel closes.
func (rt *RoundTrip) Run(ctx context.Context, frames <-chan []byte) <-chan Result {
	quit := ctx.Done()
	index := 0
	indexed := AddOnPipe(quit, func(pcm []byte) Result {
		r := Result{Index: index, Input: pcm}
		index++
		return r
	}, frames, rt.BufferSize)
	encoded := AddOnPipe(quit, rt.encode, indexed, rt.BufferSize)
	return AddOnPipe(quit, rt.decode, encoded, rt.BufferSize)
}

func (rt *RoundTrip) encode(r Result) Result {
	r.Packet, r.Err = rt.Encoder.Encode(r.Input)
	return r
}

func (rt *RoundTrip) decode(r Result) Result {
	if r.Err != nil {
		return r
	}
	r.PCM, r.Err = rt.Decoder.Decode(r.Packet)
	return r
}

func (rt *RoundTrip) Close() error {
	return errors.Join(rt.Encoder.Close(), rt.Decoder.Close())
}
