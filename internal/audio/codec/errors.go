package codec

import (
	"errors"
	"fmt"
)

// Native libopus status codes.
const (
	StatusOK             = 0
	StatusBadArg         = -1
	StatusBufferTooSmall = -2
	StatusInternalError  = -3
	StatusInvalidPacket  = -4
	StatusUnimplemented  = -5
	StatusInvalidState   = -6
	StatusAllocFail      = -7
)

// Taxonomy of native codec failures. MapStatus returns exactly one of these
// for any negative status.
var (
	ErrBadArgument    = errors.New("one or more invalid/out of range arguments")
	ErrBufferTooSmall = errors.New("the mode struct passed is invalid")
	ErrInternal       = errors.New("an internal error was detected")
	ErrInvalidPacket  = errors.New("the compressed data passed is corrupted")
	ErrUnimplemented  = errors.New("invalid/unsupported request number")
	ErrInvalidState   = errors.New("an encoder or decoder structure is invalid or already freed")
	ErrAllocFail      = errors.New("memory allocation has failed")
	ErrUnknown        = errors.New("unknown opus error")
)

// Wrapper-level failures raised by the facade itself.
var (
	ErrConstruction = errors.New("opus: engine construction failed")
	ErrUsage        = errors.New("opus: invalid usage")
)

// MapStatus is total: codes outside the known set map to ErrUnknown.
// StatusOK maps to nil.
func MapStatus(code int) error {
	switch code {
	case StatusOK:
		return nil
	case StatusBadArg:
		return ErrBadArgument
	case StatusBufferTooSmall:
		return ErrBufferTooSmall
	case StatusInternalError:
		return ErrInternal
	case StatusInvalidPacket:
		return ErrInvalidPacket
	case StatusUnimplemented:
		return ErrUnimplemented
	case StatusInvalidState:
		return ErrInvalidState
	case StatusAllocFail:
		return ErrAllocFail
	default:
		return ErrUnknown
	}
}

// Describe returns the human readable description of a native status.
func Describe(code int) string {
	if code == StatusOK {
		return "success"
	}
	return MapStatus(code).Error()
}

// StatusError is a native failure tagged with the operation that produced it.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("opus %s: %s (status %d)", e.Op, Describe(e.Code), e.Code)
}

func (e *StatusError) Unwrap() error {
	return MapStatus(e.Code)
}

func statusError(op string, code int) error {
	return &StatusError{Op: op, Code: code}
}

// StatusOf extracts the native status code carried by err. Errors without a
// StatusError in their chain report StatusOK and false.
func StatusOf(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return StatusOK, false
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
