package detect

import "github.com/sniffgo/sniff/token"

// probeID3v2 recognizes an "ID3" tag, skips its header and sync-safe tag
// body, and recurses on whatever follows. If the tag body would run past
// the known size, it gives up on the recursion and reports mp3 directly,
// since an ID3v2 tag this is the overwhelmingly common container for.
func (d *dispatcher) probeID3v2() (Result, bool, bool, error) {
	if !d.checkString("ID3", 0) {
		return Result{}, false, false, nil
	}
	if err := d.ensure(10); err != nil {
		return Result{}, false, false, err
	}
	if !d.have(10) {
		return Result{}, false, false, nil
	}
	tagLen := token.SyncSafe32.Decode(d.sample[6:10])

	pos := d.t.Position()
	if size := d.knownSize(); size >= 0 && pos+10+int64(tagLen) > size {
		return result("mp3"), true, false, nil
	}

	if _, err := d.t.Ignore(10 + int64(tagLen)); err != nil {
		return Result{}, false, false, err
	}
	return Result{}, false, true, nil
}

// knownSize returns the tokenizer's known size, or -1 when unknown (the
// dispatcher's own maxKnownSize sentinel is deliberately not surfaced here:
// ID3 needs to distinguish "genuinely unknown" from "huge but known" to
// decide whether to fall back to the mp3 default).
func (d *dispatcher) knownSize() int64 {
	if fi := d.t.FileInfo(); fi.Size != nil {
		return *fi.Size
	}
	return -1
}
