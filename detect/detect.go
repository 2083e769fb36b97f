// Package detect implements the signature-matching dispatcher: given a
// tokenizer, it decides a file format by probing fixed offsets of a
// resident sample buffer, escalating the sample size on demand, and
// recursively descending into a handful of container formats. It never
// panics on unrecognized input — only genuine I/O or programmer errors
// escape DetectFromTokenizer; "not recognized" is always a plain (Result{},
// false, nil).
package detect

import (
	"errors"

	"github.com/sniffgo/sniff/catalog"
	"github.com/sniffgo/sniff/tokenizer"
)

// Result is the detected format: one extension/MIME pair drawn from the
// catalog.
type Result struct {
	Ext  string
	Mime string
}

// maxKnownSize is substituted for a tokenizer's size when the underlying
// source doesn't know its own length (e.g. a raw pipe), so that container
// walks bounded by "position < size" still make progress on a short,
// finite prefix instead of refusing to start.
const maxKnownSize = int64(1) << 62

var extMime map[string]string

func init() {
	extMime = make(map[string]string, 64)
	for _, e := range catalog.Entries() {
		extMime[e.Ext] = e.Mime
	}
}

func result(ext string) Result {
	return Result{Ext: ext, Mime: extMime[ext]}
}

// dispatcher owns the tokenizer for the duration of one detection call and
// the resident sample buffer the probes read from.
type dispatcher struct {
	t         tokenizer.Tokenizer
	base      int64 // tokenizer position when this dispatcher run started
	sample    []byte
	sampleLen int
	size      int64
}

func newDispatcher(t tokenizer.Tokenizer) *dispatcher {
	size := maxKnownSize
	if fi := t.FileInfo(); fi.Size != nil {
		size = *fi.Size
	}
	return &dispatcher{t: t, base: t.Position(), size: size}
}

// ensure grows the resident sample to at least n bytes (capped by what the
// tokenizer can actually supply) by re-peeking from the dispatcher's base
// position. Re-peeking is idempotent: it never advances the tokenizer.
func (d *dispatcher) ensure(n int) error {
	if len(d.sample) >= n && d.sampleLen >= n {
		return nil
	}
	if cap(d.sample) < n {
		grown := make([]byte, n)
		copy(grown, d.sample)
		d.sample = grown
	} else {
		d.sample = d.sample[:n]
	}
	got, err := d.t.PeekBufferAt(d.sample[:n], d.base, true)
	if err != nil && !errors.Is(err, tokenizer.ErrEndOfStream) {
		return err
	}
	d.sampleLen = got
	return nil
}

// have reports whether the sample buffer currently holds at least n bytes.
func (d *dispatcher) have(n int) bool { return d.sampleLen >= n }

// check compares sample[offset:offset+len(header)] against header, applying
// mask byte-wise when mask is non-nil. Bytes beyond the peeked length never
// match.
func (d *dispatcher) check(header []byte, offset int, mask []byte) bool {
	if offset < 0 || offset+len(header) > d.sampleLen {
		return false
	}
	for i, want := range header {
		got := d.sample[offset+i]
		if mask != nil {
			got &= mask[i]
		}
		if got != want {
			return false
		}
	}
	return true
}

func (d *dispatcher) checkString(s string, offset int) bool {
	return d.check([]byte(s), offset, nil)
}

// DetectFromTokenizer is the core dispatcher entry point: it decides
// {ext, mime} from t's bytes without consuming more of t than a matching
// container walk needs. An EndOfStream encountered anywhere during
// detection (including inside a recursive container walk) is swallowed and
// reported as "no match"; any other error propagates.
func DetectFromTokenizer(t tokenizer.Tokenizer) (Result, bool, error) {
	res, ok, err := detectOnce(t)
	if err != nil {
		if errors.Is(err, tokenizer.ErrEndOfStream) {
			return Result{}, false, nil
		}
		return Result{}, false, err
	}
	return res, ok, nil
}

func detectOnce(t tokenizer.Tokenizer) (Result, bool, error) {
	d := newDispatcher(t)
	if err := d.ensure(12); err != nil {
		return Result{}, false, err
	}

	if res, ok, recurse, err := d.probeBOM(); err != nil || ok || recurse {
		if recurse {
			return detectOnce(t)
		}
		return res, ok, err
	}
	if d.check([]byte{0xff, 0xfe}, 0, nil) || d.check([]byte{0xfe, 0xff}, 0, nil) {
		// A UTF-16 BOM that probeBOM did not match ends detection as unknown.
		return Result{}, false, nil
	}

	if res, ok, recurse, err := d.probeID3v2(); err != nil || ok || recurse {
		if recurse {
			return detectOnce(t)
		}
		return res, ok, err
	}

	type probe func(*dispatcher) (Result, bool, error)
	probes := []probe{
		(*dispatcher).probeShortMagics, // 2..9-byte fixed magics, cheapest first
		(*dispatcher).probeZip,
		(*dispatcher).probeISOBMFF,
		(*dispatcher).probeOgg,
		(*dispatcher).probeMatroska,
		(*dispatcher).probeRIFF,
		(*dispatcher).probePNG,
		(*dispatcher).probeTIFF,
		(*dispatcher).probeASF,
		(*dispatcher).probeJPEG2000,
		(*dispatcher).probePDF,
	}
	for _, p := range probes {
		res, ok, err := p(d)
		if err != nil {
			return Result{}, false, err
		}
		if ok {
			return res, true, nil
		}
		if t.Position() != d.base {
			// A container walk consumed input without a match; the sample
			// can no longer be re-peeked from d.base, so detection ends here.
			return Result{}, false, nil
		}
	}

	// Late, wider-window probes.
	if err := d.ensure(256); err != nil {
		return Result{}, false, err
	}
	if res, ok, err := d.probeMPEGAudio(); err != nil || ok {
		return res, ok, err
	}
	if res, ok, err := d.probeMPEGTS(); err != nil || ok {
		return res, ok, err
	}
	if res, ok, err := d.probeASAR(); err != nil || ok {
		return res, ok, err
	}
	if res, ok, err := d.probeCatchAllsLate(); err != nil || ok {
		return res, ok, err
	}

	if err := d.ensure(512); err != nil {
		return Result{}, false, err
	}
	if res, ok, err := d.probeTAR(); err != nil || ok {
		return res, ok, err
	}
	if res, ok, err := d.probeAR(); err != nil || ok {
		return res, ok, err
	}

	return Result{}, false, nil
}
