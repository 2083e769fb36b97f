package source

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestMemorySourcePeekThenReadAgree(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	m := NewMemorySource(data)

	for _, p := range []int{0, 5, 20, len(data) - 1} {
		peeked := make([]byte, 6)
		n1, err := m.Peek(peeked, p, true)
		if err != nil {
			t.Fatalf("peek at %d: %v", p, err)
		}
		read := make([]byte, 6)
		n2, err := m.Read(read, p, true)
		if err != nil {
			t.Fatalf("read at %d: %v", p, err)
		}
		if n1 != n2 || !bytes.Equal(peeked[:n1], read[:n2]) {
			t.Errorf("peek/read mismatch at %d: %q vs %q", p, peeked[:n1], read[:n2])
		}
	}
}

func TestMemorySourceShortReadAtEnd(t *testing.T) {
	m := NewMemorySource([]byte("abc"))
	dst := make([]byte, 10)

	n, err := m.Read(dst, 0, true)
	if err != nil || n != 3 {
		t.Fatalf("mayBeLess read: n=%d err=%v", n, err)
	}

	n, err = m.Read(dst, 0, false)
	if !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream, got n=%d err=%v", n, err)
	}
}

func TestMemorySourceNegativeOffset(t *testing.T) {
	m := NewMemorySource([]byte("abc"))
	_, err := m.Read(make([]byte, 1), -1, true)
	if !errors.Is(err, ErrNegativeOffset) {
		t.Fatalf("expected ErrNegativeOffset, got %v", err)
	}
}

func TestStreamSourceReadMatchesOriginalSequence(t *testing.T) {
	original := []byte("0123456789abcdefghijklmnopqrstuvwxyz")
	s := NewStreamSource(bytes.NewReader(original))

	var got []byte
	buf := make([]byte, 4)
	for {
		n, err := s.Read(buf, 0, true)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
		if n == 0 {
			break
		}
	}
	if !bytes.Equal(got, original) {
		t.Fatalf("got %q, want %q", got, original)
	}
}

func TestStreamSourcePeekThenReadReturnsSameBytes(t *testing.T) {
	original := []byte("hello, streaming world")
	s := NewStreamSource(bytes.NewReader(original))

	peeked := make([]byte, 5)
	n, err := s.Peek(peeked, 0, true)
	if err != nil || n != 5 {
		t.Fatalf("peek: n=%d err=%v", n, err)
	}

	read := make([]byte, 5)
	n, err = s.Read(read, 0, true)
	if err != nil || n != 5 {
		t.Fatalf("read: n=%d err=%v", n, err)
	}
	if !bytes.Equal(peeked, read) {
		t.Fatalf("peek %q != subsequent read %q", peeked, read)
	}
}

func TestStreamSourcePeekAheadThenReadOrdering(t *testing.T) {
	original := []byte("ABCDEFGHIJ")
	s := NewStreamSource(bytes.NewReader(original))

	// Peek 4 bytes starting 3 ahead of the cursor (i.e. bytes D,E,F,G).
	far := make([]byte, 4)
	n, err := s.Peek(far, 3, true)
	if err != nil || n != 4 || string(far) != "DEFG" {
		t.Fatalf("peek ahead: n=%d err=%v got=%q", n, err, far)
	}

	// A subsequent sequential read must still reproduce ABCDEFGHIJ in order.
	var got []byte
	buf := make([]byte, 3)
	for {
		n, err := s.Read(buf, 0, true)
		got = append(got, buf[:n]...)
		if err != nil || n == 0 {
			break
		}
	}
	if !bytes.Equal(got, original) {
		t.Fatalf("got %q, want %q", got, original)
	}
}

func TestStreamSourceRequireMoreThanAvailable(t *testing.T) {
	s := NewStreamSource(bytes.NewReader([]byte("ab")))
	dst := make([]byte, 5)
	n, err := s.Read(dst, 0, false)
	if n != 2 || !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestStreamSourceBadSource(t *testing.T) {
	s := NewStreamSource(nil)
	_, err := s.Read(make([]byte, 1), 0, false)
	if !errors.Is(err, ErrBadSource) {
		t.Fatalf("expected ErrBadSource, got %v", err)
	}
}

type erroringReader struct{ err error }

func (e erroringReader) Read(p []byte) (int, error) { return 0, e.err }

func TestStreamSourcePropagatesUnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	s := NewStreamSource(erroringReader{boom})
	_, err := s.Read(make([]byte, 1), 0, false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

var _ io.Reader = (*bytes.Reader)(nil)
