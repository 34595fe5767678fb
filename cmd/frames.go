package main

import (
	"context"
	"errors"
	"io"
)

// readFrames splits r into frameBytes sized chunks. The final short chunk is
// zero padded to a whole frame. Read errors other than EOF are sent on errc.
func readFrames(ctx context.Context, r io.Reader, frameBytes int, errc chan<- error) <-chan []byte {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			buf := make([]byte, frameBytes)
			n, err := io.ReadFull(r, buf)
			if n > 0 {
				clear(buf[n:])
				select {
				case out <- buf:
				case <-ctx.Done():
					return
				}
			}
			switch {
			case err == nil:
				continue
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				return
			default:
				errc <- err
				return
			}
		}
	}()
	return out
}
