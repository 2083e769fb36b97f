package detect

import (
	"golang.org/x/text/encoding/unicode"
)

// probeBOM strips a UTF-8 BOM and recurses on the bytes that follow it, or
// runs a pair of targeted UTF-16 text probes for a UTF-16 BOM, reporting xml
// for an XML prolog and "unknown" otherwise. The third return value tells the caller to
// re-enter detection from scratch after the cursor moved.
func (d *dispatcher) probeBOM() (Result, bool, bool, error) {
	if d.check([]byte{0xef, 0xbb, 0xbf}, 0, nil) {
		if _, err := d.t.Ignore(3); err != nil {
			return Result{}, false, false, err
		}
		return Result{}, false, true, nil
	}
	if d.check([]byte{0xff, 0xfe}, 0, nil) {
		return d.probeUTF16Text(unicode.LittleEndian)
	}
	if d.check([]byte{0xfe, 0xff}, 0, nil) {
		return d.probeUTF16Text(unicode.BigEndian)
	}
	return Result{}, false, false, nil
}

// probeUTF16Text decodes the sample past the BOM to check for an XML
// prolog or a SketchUp signature, the two disambiguations the reference
// runs at this decision point. An XML prolog reports xml; SketchUp has no
// catalog entry of its own, so it, like any other UTF-16 text, reports
// "unknown".
func (d *dispatcher) probeUTF16Text(endian unicode.Endianness) (Result, bool, bool, error) {
	if err := d.ensure(64); err != nil {
		return Result{}, false, false, err
	}
	if d.sampleLen <= 2 {
		return Result{}, false, false, nil
	}
	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	text, err := dec.Bytes(d.sample[2:d.sampleLen])
	if err != nil {
		return Result{}, false, false, nil
	}
	s := string(text)
	isXML := len(s) >= 5 && s[:5] == "<?xml"
	isSketchUp := len(s) >= 14 && s[:14] == "SketchUp Model"
	if isXML {
		return result("xml"), true, false, nil
	}
	_ = isSketchUp // SketchUp has no catalog entry of its own
	return Result{}, false, false, nil
}
