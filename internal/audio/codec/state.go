// Package codec is a stateful opus facade: one object owning a lazily
// realized encoder and decoder over a fixed configuration, with fixed
// capacity buffers reused across calls.
//
// A Codec is not safe for concurrent use. Independent Codec values share
// nothing and may be driven from different goroutines.
package codec

import (
	"errors"
	"fmt"
	"io"
	"opus-codec/internal/audio/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Codec struct {
	cfg      config.CodecConfig
	factory  EngineFactory
	observer Observer
	log      zerolog.Logger

	// nil until first use, never replaced once set
	encoder EncoderEngine
	decoder DecoderEngine
	closed  bool

	outOpus []byte  // MaxPacketSize
	inPcm   []int16 // encode scratch, channels * MaxFrameSize
	outPcm  []int16 // decode target, channels * MaxFrameSize

	lastDecoded int
}

type Option func(*Codec)

// WithFactory replaces the libopus engine factory.
func WithFactory(f EngineFactory) Option {
	return func(c *Codec) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithObserver installs a hook notified of engine construction and frame events.
func WithObserver(o Observer) Option {
	return func(c *Codec) {
		if o != nil {
			c.observer = o
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Codec) {
		c.log = l
	}
}

// New validates cfg and returns a codec with neither engine realized.
func New(cfg config.CodecConfig, opts ...Option) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Codec{
		cfg:      cfg,
		factory:  OpusFactory{},
		observer: NoopObserver{},
		log:      log.Logger,
		outOpus:  make([]byte, config.MaxPacketSize),
		inPcm:    make([]int16, cfg.PCMBufferSize()),
		outPcm:   make([]int16, cfg.PCMBufferSize()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("component", "codec").Str("config", cfg.String()).Logger()
	return c, nil
}

func (c *Codec) Config() config.CodecConfig {
	return c.cfg
}

func (c *Codec) EncoderReady() bool {
	return c.encoder != nil
}

func (c *Codec) DecoderReady() bool {
	return c.decoder != nil
}

// ensureEncoder realizes the encoder on first use. A failed construction
// leaves the encoder unrealized and is not retried here.
func (c *Codec) ensureEncoder() error {
	if c.closed {
		return statusError("encoder", StatusInvalidState)
	}
	if c.encoder != nil {
		return nil
	}
	enc, err := c.factory.NewEncoder(c.cfg)
	if err == nil && enc == nil {
		err = statusError("encoder create", StatusInternalError)
	}
	if err != nil {
		return c.constructionFailed(KindEncoder, err)
	}
	c.encoder = enc
	c.observer.EngineCreated(KindEncoder)
	c.log.Debug().Str("engine", string(KindEncoder)).Msg("Engine created")
	return nil
}

func (c *Codec) ensureDecoder() error {
	if c.closed {
		return statusError("decoder", StatusInvalidState)
	}
	if c.decoder != nil {
		return nil
	}
	dec, err := c.factory.NewDecoder(c.cfg)
	if err == nil && dec == nil {
		err = statusError("decoder create", StatusInternalError)
	}
	if err != nil {
		return c.constructionFailed(KindDecoder, err)
	}
	c.decoder = dec
	c.observer.EngineCreated(KindDecoder)
	c.log.Debug().Str("engine", string(KindDecoder)).Msg("Engine created")
	return nil
}

func (c *Codec) constructionFailed(kind EngineKind, err error) error {
	c.observer.EngineFailed(kind, err)
	c.log.Warn().Err(err).Str("engine", string(kind)).Msg("Engine construction failed")
	return fmt.Errorf("%w: %s %s: %w", ErrConstruction, kind, c.cfg, err)
}

// engineError normalizes an engine failure so that it always carries a
// native status, then reports it.
func (c *Codec) engineError(op string, err error) error {
	if _, ok := StatusOf(err); !ok {
		err = fmt.Errorf("%w: %w", statusError(op, StatusInternalError), err)
	}
	c.observer.CodecError(op, err)
	return err
}

// Close releases every realized engine exactly once. Engines implementing
// io.Closer are closed; the rest are dropped for the garbage collector.
// Close is idempotent and any later operation fails with ErrInvalidState.
func (c *Codec) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if c.encoder != nil {
		if cl, ok := c.encoder.(io.Closer); ok {
			errs = append(errs, cl.Close())
		}
		c.encoder = nil
	}
	if c.decoder != nil {
		if cl, ok := c.decoder.(io.Closer); ok {
			errs = append(errs, cl.Close())
		}
		c.decoder = nil
	}
	c.outOpus, c.inPcm, c.outPcm = nil, nil, nil
	c.log.Debug().Msg("Codec closed")
	return errors.Join(errs...)
}
