package codec

// EngineKind names one of the two lazily realized engines.
type EngineKind string

const (
	KindEncoder EngineKind = "encoder"
	KindDecoder EngineKind = "decoder"
)

// Observer receives lifecycle and per-frame events from a Codec.
// Calls happen synchronously on the goroutine driving the codec.
type Observer interface {
	EngineCreated(kind EngineKind)
	EngineFailed(kind EngineKind, err error)
	FrameEncoded(bytes int)
	FrameDecoded(samples int)
	CodecError(op string, err error)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) EngineCreated(EngineKind)       {}
func (NoopObserver) EngineFailed(EngineKind, error) {}
func (NoopObserver) FrameEncoded(int)               {}
func (NoopObserver) FrameDecoded(int)               {}
func (NoopObserver) CodecError(string, error)       {}
