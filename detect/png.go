package detect

import "encoding/binary"

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// probePNG recognizes the PNG signature and walks its chunk chain looking
// for IDAT (plain png) or, if it comes first, acTL (animated PNG). A
// negative chunk length is treated as corrupt structure and aborts the
// walk with no match rather than looping forever.
func (d *dispatcher) probePNG() (Result, bool, error) {
	if !d.check(pngMagic, 0, nil) {
		return Result{}, false, nil
	}
	if _, err := d.t.Ignore(8); err != nil {
		return Result{}, false, err
	}

	for d.t.Position()+8 < d.size {
		hdr := make([]byte, 8)
		n, err := d.t.ReadBuffer(hdr, true)
		if err != nil {
			return Result{}, false, err
		}
		if n < 8 {
			break
		}
		length := int32(binary.BigEndian.Uint32(hdr[0:4]))
		chunkType := string(hdr[4:8])
		if length < 0 {
			return Result{}, false, nil
		}

		switch chunkType {
		case "IDAT":
			return result("png"), true, nil
		case "acTL":
			return result("apng"), true, nil
		}

		if _, err := d.t.Ignore(int64(length) + 4); err != nil {
			return Result{}, false, err
		}
	}
	return Result{}, false, nil
}
