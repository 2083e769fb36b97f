// Package tokenizer layers a logical, monotonically-advancing position
// cursor and typed token reads on top of a source.Source. It is the layer
// the signature dispatcher consumes: callers never touch a Source directly
// once a Tokenizer exists.
package tokenizer

import (
	"errors"

	"github.com/sniffgo/sniff/source"
	"github.com/sniffgo/sniff/token"
)

// Sentinel errors returned by a Tokenizer.
var (
	// ErrEndOfStream mirrors source.ErrEndOfStream; re-exported here so
	// callers that only import tokenizer don't also need source.
	ErrEndOfStream = source.ErrEndOfStream

	// ErrInvalidPosition is returned whenever a caller requests an
	// absolute position behind the tokenizer's current position, for
	// both the read and the peek path alike — the reference
	// implementation this is modeled on used two different error
	// messages for the same condition on its two paths; this
	// implementation unifies them into one sentinel.
	ErrInvalidPosition = errors.New("tokenizer: position must not precede current position")
)

// FileInfo carries the caller-supplied hints a Tokenizer exposes
// read-only to the dispatcher: a known total size (nil when unknown) and
// an optional hint MIME type, carried through from the original caller,
// that the dispatcher never alters.
type FileInfo struct {
	Size     *int64
	MimeType string
}

// Tokenizer is a forward-only cursor over a source.Source. Position only
// increases; reads and peeks at an explicit absolute position behind the
// current one fail with ErrInvalidPosition rather than silently clamping.
type Tokenizer interface {
	// Position returns the current logical position.
	Position() int64

	// FileInfo returns the tokenizer's file metadata.
	FileInfo() FileInfo

	// ReadBuffer fills dst at the current position, advances Position by
	// the number of bytes read, and returns that count. With
	// mayBeLess=false a short read at end-of-stream returns
	// ErrEndOfStream; with mayBeLess=true it returns the short count and
	// a nil error.
	ReadBuffer(dst []byte, mayBeLess bool) (int, error)

	// PeekBuffer behaves like ReadBuffer but never advances Position.
	PeekBuffer(dst []byte, mayBeLess bool) (int, error)

	// ReadBufferAt is ReadBuffer at an explicit absolute position, which
	// must be >= Position(). Bytes strictly between the old and new
	// position are skipped (and, for a stream-backed tokenizer,
	// physically consumed) as part of the call.
	ReadBufferAt(dst []byte, position int64, mayBeLess bool) (int, error)

	// PeekBufferAt is PeekBuffer at an explicit absolute position, which
	// must be >= Position(). Position is left unchanged.
	PeekBufferAt(dst []byte, position int64, mayBeLess bool) (int, error)

	// Ignore advances Position by length, without copying the skipped
	// bytes out to the caller. When the tokenizer's size is known and
	// length would run past it, the skip is clamped to the remaining
	// size and the clamped count is returned with a nil error.
	Ignore(length int64) (int64, error)

	// Close releases the underlying source.
	Close() error
}

// base implements the shared position/size bookkeeping atop an arbitrary
// source.Source; MemoryTokenizer and StreamTokenizer each pick the Source
// implementation and plug it in here.
type base struct {
	src    source.Source
	pos    int64
	info   FileInfo
	closed bool
}

func (t *base) Position() int64   { return t.pos }
func (t *base) FileInfo() FileInfo { return t.info }

func (t *base) ReadBuffer(dst []byte, mayBeLess bool) (int, error) {
	n, err := t.readAt(dst, t.pos, mayBeLess, false)
	t.pos += int64(n)
	return n, err
}

func (t *base) PeekBuffer(dst []byte, mayBeLess bool) (int, error) {
	return t.readAt(dst, t.pos, mayBeLess, true)
}

func (t *base) ReadBufferAt(dst []byte, position int64, mayBeLess bool) (int, error) {
	if position < t.pos {
		return 0, ErrInvalidPosition
	}
	n, err := t.readAt(dst, position, mayBeLess, false)
	t.pos = position + int64(n)
	return n, err
}

func (t *base) PeekBufferAt(dst []byte, position int64, mayBeLess bool) (int, error) {
	if position < t.pos {
		return 0, ErrInvalidPosition
	}
	return t.readAt(dst, position, mayBeLess, true)
}

// readAt is the single place that translates an absolute position into the
// offset argument a source.Source expects. For a MemorySource that offset
// is the absolute index into the backing slice; for a StreamSource it is
// the number of not-yet-consumed bytes to skip ahead of the source's own
// cursor, which is always t.pos since nothing out-runs the tokenizer.
func (t *base) readAt(dst []byte, position int64, mayBeLess, peek bool) (int, error) {
	if _, isMem := t.src.(*source.MemorySource); isMem {
		if peek {
			return t.src.Peek(dst, int(position), mayBeLess)
		}
		return t.src.Read(dst, int(position), mayBeLess)
	}
	delta := int(position - t.pos)
	if peek {
		return t.src.Peek(dst, delta, mayBeLess)
	}
	return t.src.Read(dst, delta, mayBeLess)
}

const ignoreScratchSize = 256 * 1024

func (t *base) Ignore(length int64) (int64, error) {
	if length < 0 {
		return 0, ErrInvalidPosition
	}
	if t.info.Size != nil {
		remaining := *t.info.Size - t.pos
		if remaining < 0 {
			remaining = 0
		}
		if length > remaining {
			length = remaining
		}
	}
	if _, isMem := t.src.(*source.MemorySource); isMem {
		t.pos += length
		return length, nil
	}
	scratch := make([]byte, ignoreScratchSize)
	var skipped int64
	for skipped < length {
		want := length - skipped
		if want > ignoreScratchSize {
			want = ignoreScratchSize
		}
		n, err := t.src.Read(scratch[:want], 0, true)
		skipped += int64(n)
		t.pos += int64(n)
		if err != nil {
			return skipped, err
		}
		if n == 0 {
			break
		}
	}
	return skipped, nil
}

func (t *base) Close() error {
	t.closed = true
	return nil
}

// MemoryTokenizer is a Tokenizer over an in-memory byte slice.
type MemoryTokenizer struct{ base }

// NewMemoryTokenizer wraps b. fileInfo.Size is set from len(b) when the
// caller's FileInfo.Size is nil.
func NewMemoryTokenizer(b []byte, fileInfo FileInfo) *MemoryTokenizer {
	if fileInfo.Size == nil {
		sz := int64(len(b))
		fileInfo.Size = &sz
	}
	return &MemoryTokenizer{base{src: source.NewMemorySource(b), info: fileInfo}}
}

// StreamTokenizer is a Tokenizer over a one-shot, forward-only byte stream.
type StreamTokenizer struct{ base }

// NewStreamTokenizer wraps src. fileInfo.Size is left as given by the
// caller (streams rarely know their own length up front).
func NewStreamTokenizer(src source.Source, fileInfo FileInfo) *StreamTokenizer {
	return &StreamTokenizer{base{src: src, info: fileInfo}}
}

// ReadToken reads tok.Len() bytes at the current position and decodes them.
func ReadToken[T any](t Tokenizer, tok token.Token[T]) (T, error) {
	var zero T
	buf := make([]byte, tok.Len())
	n, err := t.ReadBuffer(buf, false)
	if err != nil {
		return zero, err
	}
	if n < tok.Len() {
		return zero, ErrEndOfStream
	}
	return tok.Decode(buf), nil
}

// PeekToken peeks tok.Len() bytes at the current position and decodes them.
func PeekToken[T any](t Tokenizer, tok token.Token[T]) (T, error) {
	var zero T
	buf := make([]byte, tok.Len())
	n, err := t.PeekBuffer(buf, false)
	if err != nil {
		return zero, err
	}
	if n < tok.Len() {
		return zero, ErrEndOfStream
	}
	return tok.Decode(buf), nil
}

// ReadTokenAt is ReadToken at an explicit absolute position >= Position().
func ReadTokenAt[T any](t Tokenizer, tok token.Token[T], position int64) (T, error) {
	var zero T
	buf := make([]byte, tok.Len())
	n, err := t.ReadBufferAt(buf, position, false)
	if err != nil {
		return zero, err
	}
	if n < tok.Len() {
		return zero, ErrEndOfStream
	}
	return tok.Decode(buf), nil
}

// PeekTokenAt is PeekToken at an explicit absolute position >= Position().
func PeekTokenAt[T any](t Tokenizer, tok token.Token[T], position int64) (T, error) {
	var zero T
	buf := make([]byte, tok.Len())
	n, err := t.PeekBufferAt(buf, position, false)
	if err != nil {
		return zero, err
	}
	if n < tok.Len() {
		return zero, ErrEndOfStream
	}
	return tok.Decode(buf), nil
}
