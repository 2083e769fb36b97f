package source

import (
	"io"
)

// maxPull caps a single read from the underlying reader; StreamSource loops
// internally when it needs to satisfy a larger request.
const maxPull = 1 << 20 // 1 MiB

// StreamSource is a Source over a one-shot io.Reader. It has no random
// access: Read and Peek both operate relative to the source's own internal
// cursor, moving forward only. Peek is implemented with a FIFO queue of
// buffered fragments pulled ahead of where the caller has consumed to;
// Read drains that queue before pulling more from the reader, so bytes
// observed by a Peek are returned again, in the same order, by the next
// Read.
//
// Go's io.Reader contract (n, err with io.EOF) plays the role the spec
// assigns to a push-mode stream's readable/end/error/close events: a
// blocking Read call here is this source's suspension point, same as a
// pending deferred waiting on "readable" in the reference design.
type StreamSource struct {
	r      io.Reader
	queue  [][]byte // buffered, unconsumed fragments in emission order
	eof    bool
	eofErr error
	size   int64
	known  bool
}

// NewStreamSource wraps r. If r also implements a Size() (int64, bool)
// accessor (rare for a one-shot stream, but some wrappers know their total
// length in advance) that is used to report a known size; otherwise Size
// stays unknown, even after EOF.
func NewStreamSource(r io.Reader) *StreamSource {
	if r == nil {
		return &StreamSource{r: nil}
	}
	s := &StreamSource{r: r}
	if sz, ok := r.(interface{ Size() (int64, bool) }); ok {
		s.size, s.known = sz.Size()
	}
	return s
}

func (s *StreamSource) bufferedLen() int {
	n := 0
	for _, f := range s.queue {
		n += len(f)
	}
	return n
}

// ensure pulls from the underlying reader until at least n bytes are
// buffered or EOF is reached.
func (s *StreamSource) ensure(n int) {
	if s.r == nil {
		s.eof = true
		s.eofErr = ErrBadSource
		return
	}
	for !s.eof && s.bufferedLen() < n {
		want := n - s.bufferedLen()
		if want > maxPull {
			want = maxPull
		}
		buf := make([]byte, want)
		read, err := s.r.Read(buf)
		if read > 0 {
			s.queue = append(s.queue, buf[:read])
		}
		if err != nil {
			s.eof = true
			if err != io.EOF {
				s.eofErr = err
			}
			return
		}
		if read == 0 {
			// Reader made no progress and returned no error; treat as EOF
			// rather than spin.
			s.eof = true
			return
		}
	}
}

// takeFront removes and returns the first n buffered bytes. Callers must
// have already ensured n <= bufferedLen().
func (s *StreamSource) takeFront(n int) []byte {
	out := make([]byte, 0, n)
	for n > 0 && len(s.queue) > 0 {
		head := s.queue[0]
		if len(head) <= n {
			out = append(out, head...)
			n -= len(head)
			s.queue = s.queue[1:]
			continue
		}
		out = append(out, head[:n]...)
		s.queue[0] = head[n:]
		n = 0
	}
	return out
}

// peekRange copies [from, from+n) of the buffered (unconsumed) bytes into a
// fresh slice without removing anything from the queue. Callers must have
// already ensured from+n <= bufferedLen() (or accept a short copy).
func (s *StreamSource) peekRange(from, n int) []byte {
	out := make([]byte, 0, n)
	skip := from
	for _, f := range s.queue {
		if n == 0 {
			break
		}
		if skip >= len(f) {
			skip -= len(f)
			continue
		}
		f = f[skip:]
		skip = 0
		take := n
		if take > len(f) {
			take = len(f)
		}
		out = append(out, f[:take]...)
		n -= take
	}
	return out
}

func (s *StreamSource) checkErr(requested, got int, mayBeLess bool) error {
	if got >= requested {
		return nil
	}
	if mayBeLess {
		return nil
	}
	if s.eofErr != nil {
		return s.eofErr
	}
	return ErrEndOfStream
}

// Read consumes offset buffered/pulled bytes (discarding them permanently,
// since Read advances the stream) and then fills dst from what follows.
func (s *StreamSource) Read(dst []byte, offset int, mayBeLess bool) (int, error) {
	if offset < 0 {
		return 0, ErrNegativeOffset
	}
	total := offset + len(dst)
	s.ensure(total)
	avail := s.bufferedLen()
	if offset > avail {
		offset = avail
	}
	if offset > 0 {
		s.takeFront(offset)
		avail -= offset
	}
	want := len(dst)
	if want > avail {
		want = avail
	}
	copy(dst, s.takeFront(want))
	return want, s.checkErr(len(dst), want, mayBeLess)
}

// Peek reads offset+len(dst) bytes ahead without consuming any of them.
func (s *StreamSource) Peek(dst []byte, offset int, mayBeLess bool) (int, error) {
	if offset < 0 {
		return 0, ErrNegativeOffset
	}
	total := offset + len(dst)
	s.ensure(total)
	avail := s.bufferedLen()
	want := len(dst)
	if offset >= avail {
		want = 0
	} else if offset+want > avail {
		want = avail - offset
	}
	copy(dst, s.peekRange(offset, want))
	return want, s.checkErr(len(dst), want, mayBeLess)
}

// Size reports the stream's total length only when the wrapped reader
// supplied it up front. Reaching EOF does not make the size known.
func (s *StreamSource) Size() (int64, bool) {
	if s.known {
		return s.size, true
	}
	return 0, false
}
