package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	SampleRateOpus = 48000 // default rate, opus runs natively at 48kHz
	ChannelsOpus   = 1

	FrameSize      = 960           // samples 20 ms at 48kHz
	MaxFrameSize   = 6 * FrameSize // 120 ms at 48kHz, the largest frame a packet can carry
	MaxPacketSize  = 3 * 1276      // three maximum-size opus frames
	DefaultBitrate = 64000
	BytesPerSample = 2 // signed 16-bit PCM
)

var ErrInvalidConfig = errors.New("invalid codec configuration")

// Application is the codec-wide tuning preset passed to the encoder.
type Application int

const (
	AppVoIP Application = iota + 1
	AppAudio
	AppLowDelay
)

func (a Application) String() string {
	switch a {
	case AppVoIP:
		return "voip"
	case AppAudio:
		return "audio"
	case AppLowDelay:
		return "lowdelay"
	default:
		return fmt.Sprintf("application(%d)", int(a))
	}
}

func (a Application) Valid() bool {
	return a >= AppVoIP && a <= AppLowDelay
}

// ParseApplication accepts the profile names used in settings files and env.
func ParseApplication(s string) (Application, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "voip", "voice":
		return AppVoIP, nil
	case "audio", "general", "":
		return AppAudio, nil
	case "lowdelay", "low-delay", "restricted-lowdelay":
		return AppLowDelay, nil
	default:
		return 0, fmt.Errorf("%w: unknown application %q", ErrInvalidConfig, s)
	}
}

// CodecConfig is fixed for the lifetime of a codec object.
type CodecConfig struct {
	SampleRate  int
	Channels    int
	Application Application
}

// DefaultCodecConfig mirrors the defaults of a bare constructor call:
// 48kHz, mono, general audio.
func DefaultCodecConfig() CodecConfig {
	return CodecConfig{
		SampleRate:  SampleRateOpus,
		Channels:    ChannelsOpus,
		Application: AppAudio,
	}
}

// NewCodecConfig validates and returns a configuration.
func NewCodecConfig(sampleRate, channels int, app Application) (CodecConfig, error) {
	cfg := CodecConfig{
		SampleRate:  sampleRate,
		Channels:    channels,
		Application: app,
	}
	if err := cfg.Validate(); err != nil {
		return CodecConfig{}, err
	}
	return cfg, nil
}

func (c CodecConfig) Validate() error {
	var errs []error
	if !IsSampleRateValid(c.SampleRate) {
		errs = append(errs, fmt.Errorf("%w: sample rate %d not one of 8000, 12000, 16000, 24000, 48000", ErrInvalidConfig, c.SampleRate))
	}
	if c.Channels != 1 && c.Channels != 2 {
		errs = append(errs, fmt.Errorf("%w: channels must be 1 or 2, got %d", ErrInvalidConfig, c.Channels))
	}
	if !c.Application.Valid() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, c.Application))
	}
	return errors.Join(errs...)
}

// FrameSamples returns per-channel samples covering d at the configured rate.
func (c CodecConfig) FrameSamples(d time.Duration) int {
	return int(int64(c.SampleRate) * int64(d) / int64(time.Second))
}

// FrameBytes returns the interleaved PCM byte length of a frame lasting d.
func (c CodecConfig) FrameBytes(d time.Duration) int {
	return c.FrameSamples(d) * c.Channels * BytesPerSample
}

// PCMBufferSize is the decode buffer capacity in samples.
func (c CodecConfig) PCMBufferSize() int {
	return c.Channels * MaxFrameSize
}

func (c CodecConfig) String() string {
	return fmt.Sprintf("%dHz/%dch/%s", c.SampleRate, c.Channels, c.Application)
}

func IsSampleRateValid(rate int) bool {
	switch rate {
	case 8000, 12000, 16000, 24000, 48000:
		return true
	}
	return false
}
