package detect

import (
	"bytes"
	"encoding/binary"
)

var (
	asfHeaderGUID        = []byte{0x30, 0x26, 0xb2, 0x75, 0x8e, 0x66, 0xcf, 0x11, 0xa6, 0xd9, 0x00, 0xaa, 0x00, 0x62, 0xce, 0x6c}
	asfStreamPropsGUID   = []byte{0x91, 0x07, 0xdc, 0xb7, 0xa7, 0xb9, 0xcf, 0x11, 0x8e, 0xe6, 0x00, 0xc0, 0x0c, 0x20, 0x53, 0x65}
	asfAudioMediaGUID    = []byte{0x40, 0x9e, 0x69, 0xf8, 0x4d, 0x5b, 0xcf, 0x11, 0xa8, 0xfd, 0x00, 0x80, 0x5f, 0x5c, 0x44, 0x2b}
	asfVideoMediaGUID    = []byte{0xc0, 0xef, 0x19, 0xbc, 0x4d, 0x5b, 0xcf, 0x11, 0xa8, 0xfd, 0x00, 0x80, 0x5f, 0x5c, 0x44, 0x2b}
)

// probeASF recognizes the ASF/WMV/WMA header GUID, then walks the
// top-level object chain looking for the Stream-Properties object; its
// embedded stream-type GUID distinguishes WMA (audio) from WMV (video). An
// object whose declared size runs past the tokenizer's known remaining
// size is clamped rather than trusted outright, since ASF's size field is
// not itself validated against the container's real length.
func (d *dispatcher) probeASF() (Result, bool, error) {
	if !d.check(asfHeaderGUID, 0, nil) {
		return Result{}, false, nil
	}
	if _, err := d.t.Ignore(30); err != nil {
		return Result{}, false, err
	}

	for d.t.Position()+24 < d.size {
		obj := make([]byte, 24)
		n, err := d.t.ReadBuffer(obj, true)
		if err != nil {
			return Result{}, false, err
		}
		if n < 24 {
			break
		}
		guid := obj[0:16]
		size := binary.LittleEndian.Uint64(obj[16:24])
		remaining := int64(size) - 24
		if remaining < 0 {
			remaining = 0
		}
		if left := d.size - d.t.Position(); remaining > left {
			remaining = left
		}

		if bytes.Equal(guid, asfStreamPropsGUID) && remaining >= 16 {
			typeGUID := make([]byte, 16)
			got, err := d.t.ReadBuffer(typeGUID, true)
			if err != nil {
				return Result{}, false, err
			}
			remaining -= int64(got)
			if got == 16 {
				switch {
				case bytes.Equal(typeGUID, asfAudioMediaGUID):
					if _, err := d.t.Ignore(remaining); err != nil {
						return Result{}, false, err
					}
					return result("wma"), true, nil
				case bytes.Equal(typeGUID, asfVideoMediaGUID):
					if _, err := d.t.Ignore(remaining); err != nil {
						return Result{}, false, err
					}
					return result("wmv"), true, nil
				}
			}
		}

		if _, err := d.t.Ignore(remaining); err != nil {
			return Result{}, false, err
		}
	}
	return result("asf"), true, nil
}
