package sniff

import "io"

const defaultPassthroughSample = 4100

// MetricsObserver receives the outcome of one detection call.
// *sniffmetrics.Collector satisfies this interface; it is defined here
// rather than imported from sniffmetrics to avoid a package import cycle
// (sniffmetrics itself depends on this package for the Result type).
type MetricsObserver interface {
	Observe(res Result, ok bool)
}

// Passthrough wraps an io.Reader, buffering its first sampleSize bytes to
// run detection against, then replaying those bytes ahead of the rest of
// the stream so a single read of Passthrough reproduces the original byte
// sequence exactly — "lossy" only in the sense that Passthrough itself
// commits to a read-ahead buffer the caller never sees directly.
type Passthrough struct {
	buf    []byte
	bufPos int
	r      io.Reader
	result Result
	ok     bool
}

// NewPassthrough reads up to sampleSize bytes (defaultPassthroughSample
// when sampleSize <= 0) from r, detects against them, and returns a reader
// that replays the full original stream. When metrics is non-nil, the
// detection outcome is reported to it before NewPassthrough returns.
func NewPassthrough(r io.Reader, sampleSize int, metrics MetricsObserver) *Passthrough {
	if sampleSize <= 0 {
		sampleSize = defaultPassthroughSample
	}
	buf := make([]byte, sampleSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		buf = buf[:n]
	}
	res, ok := DetectFromBuffer(buf)
	if metrics != nil {
		metrics.Observe(res, ok)
	}
	return &Passthrough{buf: buf, r: r, result: res, ok: ok}
}

// FileType reports the detection result computed from the read-ahead
// sample, regardless of how much of Passthrough has been consumed since.
func (p *Passthrough) FileType() (Result, bool) {
	return p.result, p.ok
}

// Read implements io.Reader, draining the buffered sample before pulling
// any further bytes from the wrapped reader.
func (p *Passthrough) Read(dst []byte) (int, error) {
	if p.bufPos < len(p.buf) {
		n := copy(dst, p.buf[p.bufPos:])
		p.bufPos += n
		return n, nil
	}
	return p.r.Read(dst)
}
