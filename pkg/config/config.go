// Package config loads runtime settings for the opus-codec command from
// defaults, an optional YAML file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	audioconfig "opus-codec/internal/audio/config"
	"opus-codec/internal/audio/convert"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings represents the complete command configuration
type Settings struct {
	SampleRate    int           `yaml:"sample_rate"`
	Channels      int           `yaml:"channels"`
	Application   string        `yaml:"application"`
	Bitrate       int           `yaml:"bitrate"` // 0 leaves the encoder default
	FrameDuration time.Duration `yaml:"frame_duration"`
	Input         string        `yaml:"input"`  // raw s16le PCM, "-" for stdin
	Output        string        `yaml:"output"` // raw s16le PCM, "-" for stdout
	LogLevel      string        `yaml:"log_level"`
	LogFormat     string        `yaml:"log_format"`
	MetricsAddr   string        `yaml:"metrics_addr"`
}

// Defaults mirrors a bare codec construction: 48kHz mono general audio,
// 20 ms frames at the default bitrate.
func Defaults() Settings {
	return Settings{
		SampleRate:    audioconfig.SampleRateOpus,
		Channels:      audioconfig.ChannelsOpus,
		Application:   audioconfig.AppAudio.String(),
		Bitrate:       audioconfig.DefaultBitrate,
		FrameDuration: 20 * time.Millisecond,
		Input:         "-",
		Output:        "-",
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Load builds settings from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides, then validates the result.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	var errs []error
	intEnv := func(key string, dst *int) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", key, v, err))
			return
		}
		*dst = n
	}
	strEnv := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	intEnv("OPUS_SAMPLE_RATE", &s.SampleRate)
	intEnv("OPUS_CHANNELS", &s.Channels)
	intEnv("OPUS_BITRATE", &s.Bitrate)
	strEnv("OPUS_APPLICATION", &s.Application)
	strEnv("OPUS_INPUT", &s.Input)
	strEnv("OPUS_OUTPUT", &s.Output)
	strEnv("LOG_LEVEL", &s.LogLevel)
	strEnv("LOG_FORMAT", &s.LogFormat)
	strEnv("METRICS_ADDR", &s.MetricsAddr)

	if v := os.Getenv("OPUS_FRAME_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid duration format for OPUS_FRAME_DURATION: %w", err))
		} else {
			s.FrameDuration = d
		}
	}
	return errors.Join(errs...)
}

// Validate checks every field and reports all problems at once.
func (s Settings) Validate() error {
	var errs []error
	cc, err := s.CodecConfig()
	if err != nil {
		errs = append(errs, err)
	}
	if s.Bitrate < 0 {
		errs = append(errs, fmt.Errorf("bitrate must be non-negative, got %d", s.Bitrate))
	}
	if s.FrameDuration <= 0 {
		errs = append(errs, fmt.Errorf("non-positive frame duration %s", s.FrameDuration))
	} else if err == nil && !convert.IsFrameSizeValid(cc.SampleRate, cc.FrameSamples(s.FrameDuration)) {
		errs = append(errs, fmt.Errorf("frame duration %s is not an opus frame size at %d Hz", s.FrameDuration, cc.SampleRate))
	}
	if s.Input == "" {
		errs = append(errs, errors.New("input must be set"))
	}
	if s.Output == "" {
		errs = append(errs, errors.New("output must be set"))
	}
	return errors.Join(errs...)
}

// CodecConfig converts the codec fields to a validated codec configuration.
func (s Settings) CodecConfig() (audioconfig.CodecConfig, error) {
	app, err := audioconfig.ParseApplication(s.Application)
	if err != nil {
		return audioconfig.CodecConfig{}, err
	}
	return audioconfig.NewCodecConfig(s.SampleRate, s.Channels, app)
}
