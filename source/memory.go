package source

// MemorySource is a random-access Source backed by an in-memory byte slice.
// Read and Peek share the same copy path: neither ever blocks, and a Peek
// at offset p followed by a Read at offset p always observes identical
// bytes, since there is no cursor to advance between the two calls.
type MemorySource struct {
	data []byte
}

// NewMemorySource wraps b. b is not copied; callers must not mutate it
// while the source is in use.
func NewMemorySource(b []byte) *MemorySource {
	return &MemorySource{data: b}
}

func (m *MemorySource) copyAt(dst []byte, offset int, mayBeLess bool) (int, error) {
	if offset < 0 {
		return 0, ErrNegativeOffset
	}
	if offset >= len(m.data) {
		if mayBeLess {
			return 0, nil
		}
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, ErrEndOfStream
	}
	n := copy(dst, m.data[offset:])
	if n < len(dst) && !mayBeLess {
		return n, ErrEndOfStream
	}
	return n, nil
}

// Read fills dst from data[offset:]. MemorySource has no read cursor of its
// own; offset is always relative to the start of the backing slice, which
// is what the tokenizer relies on when it maps its logical position onto a
// memory-backed source.
func (m *MemorySource) Read(dst []byte, offset int, mayBeLess bool) (int, error) {
	return m.copyAt(dst, offset, mayBeLess)
}

// Peek behaves identically to Read: a memory source has nothing to advance.
func (m *MemorySource) Peek(dst []byte, offset int, mayBeLess bool) (int, error) {
	return m.copyAt(dst, offset, mayBeLess)
}

// Size always reports the backing slice's length as known.
func (m *MemorySource) Size() (int64, bool) {
	return int64(len(m.data)), true
}
