package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"opus-codec/internal/audio/codec"
	"opus-codec/internal/audio/pipeline"
	"opus-codec/pkg/config"

	"github.com/rs/zerolog/log"
)

type stats struct {
	Frames      int
	Failed      int
	InputBytes  int
	PacketBytes int
	OutputBytes int
}

func (s stats) Ratio() float64 {
	if s.PacketBytes == 0 {
		return 0
	}
	return float64(s.InputBytes) / float64(s.PacketBytes)
}

// run streams PCM from r through encode and decode and writes the decoded
// PCM to w. Frames that fail are logged and skipped.
func run(ctx context.Context, s config.Settings, r io.Reader, w io.Writer, opts ...codec.Option) (stats, error) {
	var st stats
	cc, err := s.CodecConfig()
	if err != nil {
		return st, err
	}

	rt, err := pipeline.NewRoundTrip(cc, opts...)
	if err != nil {
		return st, err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to release codec")
		}
	}()

	if s.Bitrate > 0 {
		if err := rt.Encoder.SetBitrate(s.Bitrate); err != nil {
			return st, fmt.Errorf("failed to set bitrate: %w", err)
		}
	}
	bitrate, err := rt.Encoder.Bitrate()
	if err != nil {
		return st, fmt.Errorf("failed to read bitrate: %w", err)
	}
	log.Info().
		Str("config", cc.String()).
		Int("bitrate", bitrate).
		Dur("frame", s.FrameDuration).
		Msg("Starting round trip")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readErr := make(chan error, 1)
	frames := readFrames(ctx, r, cc.FrameBytes(s.FrameDuration), readErr)

	bw := bufio.NewWriter(w)
	for res := range rt.Run(ctx, frames) {
		st.Frames++
		st.InputBytes += len(res.Input)
		if res.Err != nil {
			st.Failed++
			log.Warn().Err(res.Err).Int("frame", res.Index).Msg("Frame failed")
			continue
		}
		st.PacketBytes += len(res.Packet)
		n, err := bw.Write(res.PCM)
		st.OutputBytes += n
		if err != nil {
			return st, fmt.Errorf("failed to write pcm: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("failed to flush output: %w", err)
	}

	select {
	case err := <-readErr:
		return st, fmt.Errorf("failed to read pcm: %w", err)
	default:
	}
	return st, ctx.Err()
}
