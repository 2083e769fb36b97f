// Package source defines the uniform byte-source abstraction that the
// tokenizer sits on top of: a memory-backed implementation with cheap random
// access, and a stream-backed implementation over an io.Reader with a
// putback/peek queue. Neither implementation tracks a logical cursor of its
// own beyond what it needs to serve reads and peeks at caller-given offsets;
// position tracking is the tokenizer's job.
package source

import "errors"

// Sentinel errors returned by Source implementations.
var (
	// ErrEndOfStream is returned when fewer bytes than requested are
	// available and the caller did not opt into "may be less" tolerance.
	ErrEndOfStream = errors.New("source: end of stream")

	// ErrBadSource is returned when the backing value lacks the surface a
	// Source needs (e.g. a nil reader). Construction does not fail:
	// NewStreamSource accepts a nil reader, and the error comes from a
	// later Read or Peek called with mayBeLess false.
	ErrBadSource = errors.New("source: invalid underlying reader")

	// ErrNegativeOffset is returned when a caller requests a peek/read at
	// a negative offset.
	ErrNegativeOffset = errors.New("source: negative offset")
)

// Source is a logical, possibly-infinite sequence of octets with an
// optional known size. Once end-of-stream is reached, further reads either
// fail with ErrEndOfStream or return fewer bytes than requested, depending
// on mayBeLess.
type Source interface {
	// Read fills dst with up to len(dst) bytes starting at offset bytes
	// past the source's current read cursor and returns the count
	// actually filled. n < len(dst) only at end-of-stream; in that case
	// ErrEndOfStream is returned unless mayBeLess is true.
	Read(dst []byte, offset int, mayBeLess bool) (n int, err error)

	// Peek behaves like Read but does not advance the source's read
	// cursor: the same bytes are observable on a subsequent Read or Peek
	// at the same offset.
	Peek(dst []byte, offset int, mayBeLess bool) (n int, err error)

	// Size reports the known total size, if any.
	Size() (size int64, known bool)
}
