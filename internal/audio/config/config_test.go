package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCodecConfig(t *testing.T) {
	cfg := DefaultCodecConfig()
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 1, cfg.Channels)
	assert.Equal(t, AppAudio, cfg.Application)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FrameSize, cfg.FrameSamples(20*time.Millisecond))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 960, FrameSize)
	assert.Equal(t, 5760, MaxFrameSize)
	assert.Equal(t, 3828, MaxPacketSize)
	assert.Equal(t, 64000, DefaultBitrate)
}

func TestNewCodecConfig(t *testing.T) {
	for _, rate := range []int{8000, 12000, 16000, 24000, 48000} {
		for _, ch := range []int{1, 2} {
			cfg, err := NewCodecConfig(rate, ch, AppVoIP)
			require.NoError(t, err, "rate=%d channels=%d", rate, ch)
			assert.Equal(t, ch*MaxFrameSize, cfg.PCMBufferSize())
		}
	}
}

func TestNewCodecConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		rate int
		ch   int
		app  Application
	}{
		{"rate", 44100, 1, AppAudio},
		{"zero rate", 0, 1, AppAudio},
		{"channels", 48000, 3, AppAudio},
		{"no channels", 48000, 0, AppAudio},
		{"application", 48000, 1, Application(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodecConfig(tt.rate, tt.ch, tt.app)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestParseApplication(t *testing.T) {
	cases := map[string]Application{
		"voip":      AppVoIP,
		"Voice":     AppVoIP,
		"audio":     AppAudio,
		"":          AppAudio,
		"general":   AppAudio,
		"lowdelay":  AppLowDelay,
		"low-delay": AppLowDelay,
	}
	for in, want := range cases {
		got, err := ParseApplication(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseApplication("music")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFrameBytes(t *testing.T) {
	cfg := CodecConfig{SampleRate: 16000, Channels: 2, Application: AppVoIP}
	assert.Equal(t, 320, cfg.FrameSamples(20*time.Millisecond))
	assert.Equal(t, 1280, cfg.FrameBytes(20*time.Millisecond))
	assert.Equal(t, 40, cfg.FrameSamples(2500*time.Microsecond))
	assert.Equal(t, "16000Hz/2ch/voip", cfg.String())
}
