package detect

import (
	"errors"
	"strings"
)

var ebmlRootID = []byte{0x1a, 0x45, 0xdf, 0xa3}

const (
	ebmlDocTypeID    = 0x4282
	ebmlMaxChildren  = 64
	ebmlMaxDocType   = 64
	ebmlDefaultGuess = "matroska"
)

// probeMatroska recognizes the EBML root element ID and walks its direct
// children looking for the DocType element (0x4282); DocType's UTF-8
// payload (NUL-padded) is "webm" or "matroska". A signature match with no
// DocType found before the element runs out still defaults to matroska,
// since EBML's only other common document type in the wild is webm and
// that one is checked for explicitly.
func (d *dispatcher) probeMatroska() (Result, bool, error) {
	if !d.check(ebmlRootID, 0, nil) {
		return Result{}, false, nil
	}
	if _, err := d.t.Ignore(4); err != nil {
		return Result{}, false, err
	}

	size, err := d.ebmlReadVint(true)
	if err != nil {
		if errors.Is(err, errDecodeFailure) {
			return Result{}, false, nil
		}
		return Result{}, false, err
	}
	remaining := int64(size)

	for children := 0; remaining > 0 && children < ebmlMaxChildren; children++ {
		before := d.t.Position()
		id, err := d.ebmlReadVint(false)
		if err != nil {
			if errors.Is(err, errDecodeFailure) {
				break
			}
			return Result{}, false, err
		}
		elemSize, err := d.ebmlReadVint(true)
		if err != nil {
			if errors.Is(err, errDecodeFailure) {
				break
			}
			return Result{}, false, err
		}
		remaining -= d.t.Position() - before

		if id == ebmlDocTypeID {
			n := elemSize
			if n > ebmlMaxDocType {
				n = ebmlMaxDocType
			}
			payload := make([]byte, n)
			got, err := d.t.ReadBuffer(payload, true)
			if err != nil {
				return Result{}, false, err
			}
			remaining -= int64(got)
			doctype := strings.TrimRight(string(payload[:got]), "\x00")
			switch doctype {
			case "webm":
				return result("webm"), true, nil
			case "matroska":
				return result("matroska"), true, nil
			}
			continue
		}

		if _, err := d.t.Ignore(int64(elemSize)); err != nil {
			return Result{}, false, err
		}
		remaining -= int64(elemSize)
	}

	return result(ebmlDefaultGuess), true, nil
}

// ebmlReadVint reads one EBML variable-length-size-or-ID field: the number
// of leading zero bits in the first byte selects the field's total width
// (1..8 bytes). stripMarker clears that leading marker bit from the value,
// which is correct for size fields but not for ID fields (an ID's marker
// bits are part of its identity).
func (d *dispatcher) ebmlReadVint(stripMarker bool) (uint64, error) {
	first := make([]byte, 1)
	if _, err := d.t.ReadBuffer(first, false); err != nil {
		return 0, err
	}
	b := first[0]
	width := 1
	mask := byte(0x80)
	for mask != 0 && b&mask == 0 {
		width++
		mask >>= 1
	}
	if width > 8 {
		return 0, errDecodeFailure
	}
	var rest []byte
	if width > 1 {
		rest = make([]byte, width-1)
		if _, err := d.t.ReadBuffer(rest, false); err != nil {
			return 0, err
		}
	}
	lead := b
	if stripMarker {
		lead = b &^ mask
	}
	val := uint64(lead)
	for _, bb := range rest {
		val = val<<8 | uint64(bb)
	}
	return val, nil
}
