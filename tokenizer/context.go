package tokenizer

import "context"

// ctxReadResult carries a blocking read's outcome across the goroutine
// boundary in ReadContext/PeekContext, mirroring the background-read/
// result-channel shape a pull-based stream reader uses to make a blocking
// read cancellable.
type ctxReadResult struct {
	n   int
	err error
}

// ReadContext is ReadBuffer, cancellable: the underlying read runs on its
// own goroutine and the call returns as soon as either it completes or ctx
// is done. On cancellation the goroutine is left to finish in the
// background — the stream's cursor still advances by whatever it reads,
// so a caller that cancels must not reuse this StreamTokenizer afterward.
func (t *StreamTokenizer) ReadContext(ctx context.Context, dst []byte, mayBeLess bool) (int, error) {
	return t.readBufferContext(ctx, dst, mayBeLess, false)
}

// PeekContext is PeekBuffer, cancellable; see ReadContext.
func (t *StreamTokenizer) PeekContext(ctx context.Context, dst []byte, mayBeLess bool) (int, error) {
	return t.readBufferContext(ctx, dst, mayBeLess, true)
}

func (t *StreamTokenizer) readBufferContext(ctx context.Context, dst []byte, mayBeLess, peek bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	done := make(chan ctxReadResult, 1)
	go func() {
		var n int
		var err error
		if peek {
			n, err = t.PeekBuffer(dst, mayBeLess)
		} else {
			n, err = t.ReadBuffer(dst, mayBeLess)
		}
		done <- ctxReadResult{n, err}
	}()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case r := <-done:
		return r.n, r.err
	}
}
