package detect

import "encoding/binary"

const (
	tiffTagARW = 50341
	tiffTagDNG = 50706
)

// probeTIFF recognizes the TIFF byte-order marker and, via the version
// field, BigTIFF (43) directly, or the classic 32-bit IFD format (42),
// which it further disambiguates into CR2/NEF by header shape and into
// ARW/DNG by walking the first IFD's tags. Anything else classic-TIFF
// shaped defaults to tif.
func (d *dispatcher) probeTIFF() (Result, bool, error) {
	var bo binary.ByteOrder
	switch {
	case d.checkString("II", 0):
		bo = binary.LittleEndian
	case d.checkString("MM", 0):
		bo = binary.BigEndian
	default:
		return Result{}, false, nil
	}
	if !d.have(12) {
		return Result{}, false, nil
	}
	version := bo.Uint16(d.sample[2:4])
	ifdOffset := bo.Uint32(d.sample[4:8])

	if version == 43 {
		return result("tif"), true, nil
	}
	if version != 42 {
		return Result{}, false, nil
	}

	if ifdOffset >= 6 && d.checkString("CR", 8) {
		return result("cr2"), true, nil
	}
	if ifdOffset >= 8 {
		switch {
		case d.check([]byte{0x1c, 0x00, 0xfe, 0x00}, 8, nil):
			return result("nef"), true, nil
		case d.check([]byte{0x1f, 0x00, 0x0b, 0x00}, 8, nil):
			return result("nef"), true, nil
		}
	}

	return d.tiffWalkIFD(bo, int64(ifdOffset))
}

func (d *dispatcher) tiffWalkIFD(bo binary.ByteOrder, ifdOffset int64) (Result, bool, error) {
	countBuf := make([]byte, 2)
	n, err := d.t.ReadBufferAt(countBuf, ifdOffset, true)
	if err != nil {
		return Result{}, false, err
	}
	if n < 2 {
		return result("tif"), true, nil
	}
	numTags := bo.Uint16(countBuf)

	for i := uint16(0); i < numTags; i++ {
		tagBuf := make([]byte, 2)
		n, err := d.t.ReadBuffer(tagBuf, true)
		if err != nil {
			return Result{}, false, err
		}
		if n < 2 {
			break
		}
		tagID := bo.Uint16(tagBuf)
		if _, err := d.t.Ignore(10); err != nil {
			return Result{}, false, err
		}
		switch tagID {
		case tiffTagARW:
			return result("arw"), true, nil
		case tiffTagDNG:
			return result("dng"), true, nil
		}
	}
	return result("tif"), true, nil
}
