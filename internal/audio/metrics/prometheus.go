// Package metrics exports codec activity as Prometheus metrics.
package metrics

import (
	"opus-codec/internal/audio/codec"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus is a codec.Observer backed by Prometheus collectors. One value
// may be shared by several codecs; collectors are safe for concurrent use.
type Prometheus struct {
	EnginesCreated *prometheus.CounterVec
	EngineFailures *prometheus.CounterVec
	FramesEncoded  prometheus.Counter
	EncodedBytes   prometheus.Counter
	FramesDecoded  prometheus.Counter
	DecodedSamples prometheus.Counter
	CodecErrors    *prometheus.CounterVec
}

var _ codec.Observer = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Prometheus{
		EnginesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "opus_engines_created_total",
			Help: "Total number of codec engines realized, by kind.",
		}, []string{"kind"}),
		EngineFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "opus_engine_failures_total",
			Help: "Total number of failed engine constructions, by kind.",
		}, []string{"kind"}),
		FramesEncoded: factory.NewCounter(prometheus.CounterOpts{
			Name: "opus_frames_encoded_total",
			Help: "Total number of PCM frames encoded.",
		}),
		EncodedBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "opus_encoded_bytes_total",
			Help: "Total number of compressed bytes produced.",
		}),
		FramesDecoded: factory.NewCounter(prometheus.CounterOpts{
			Name: "opus_frames_decoded_total",
			Help: "Total number of packets decoded.",
		}),
		DecodedSamples: factory.NewCounter(prometheus.CounterOpts{
			Name: "opus_decoded_samples_total",
			Help: "Total number of per-channel samples decoded.",
		}),
		CodecErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "opus_codec_errors_total",
			Help: "Total number of encode, decode and control failures, by operation.",
		}, []string{"op"}),
	}
}

func (p *Prometheus) EngineCreated(kind codec.EngineKind) {
	p.EnginesCreated.WithLabelValues(string(kind)).Inc()
}

func (p *Prometheus) EngineFailed(kind codec.EngineKind, _ error) {
	p.EngineFailures.WithLabelValues(string(kind)).Inc()
}

func (p *Prometheus) FrameEncoded(bytes int) {
	p.FramesEncoded.Inc()
	p.EncodedBytes.Add(float64(bytes))
}

func (p *Prometheus) FrameDecoded(samples int) {
	p.FramesDecoded.Inc()
	p.DecodedSamples.Add(float64(samples))
}

func (p *Prometheus) CodecError(op string, _ error) {
	p.CodecErrors.WithLabelValues(op).Inc()
}
