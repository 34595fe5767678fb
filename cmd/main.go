package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"opus-codec/internal/audio/codec"
	"opus-codec/internal/audio/metrics"
	"opus-codec/pkg/config"
	"opus-codec/pkg/logger"
	"opus-codec/pkg/system"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// loadEnv loads environment variables from a .env file if one exists
func loadEnv() {
	if err := system.LoadEnv(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("Error loading .env file")
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("Metrics listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()
	return server
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs first.
func realMain(args []string) int {
	fs := flag.NewFlagSet("opus-codec", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("OPUS_CONFIG"), "path to a YAML settings file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	loadEnv()
	settings, err := config.Load(*configPath)
	if err != nil {
		logger.InitLogger("info", "console")
		log.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}
	logger.InitLogger(settings.LogLevel, settings.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []codec.Option
	if settings.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, codec.WithObserver(metrics.NewPrometheus(reg)))
		server := serveMetrics(settings.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	in, err := openInput(settings.Input)
	if err != nil {
		log.Error().Err(err).Str("input", settings.Input).Msg("Failed to open input")
		return 1
	}
	defer in.Close()

	out, err := openOutput(settings.Output)
	if err != nil {
		log.Error().Err(err).Str("output", settings.Output).Msg("Failed to open output")
		return 1
	}

	st, err := run(ctx, settings, in, out, opts...)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	log.Info().
		Int("frames", st.Frames).
		Int("failed", st.Failed).
		Int("packet_bytes", st.PacketBytes).
		Int("pcm_bytes", st.OutputBytes).
		Float64("ratio", st.Ratio()).
		Msg("Round trip finished")
	if err != nil {
		log.Error().Err(err).Msg("Round trip failed")
		return 1
	}
	return 0
}
