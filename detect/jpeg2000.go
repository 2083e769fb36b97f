package detect

var jp2Signature = []byte{0x00, 0x00, 0x00, 0x0c, 0x6a, 0x50, 0x20, 0x20, 0x0d, 0x0a, 0x87, 0x0a}

// probeJPEG2000 recognizes the 12-byte JP2 signature box and reads the
// 4-byte ASCII brand 20 bytes further in to pick the specific JPEG 2000
// family member.
func (d *dispatcher) probeJPEG2000() (Result, bool, error) {
	if !d.check(jp2Signature, 0, nil) {
		return Result{}, false, nil
	}
	if err := d.ensure(24); err != nil {
		return Result{}, false, err
	}
	if !d.have(24) {
		return Result{}, false, nil
	}
	switch {
	case d.checkString("jp2 ", 20):
		return result("jp2"), true, nil
	case d.checkString("jpx ", 20):
		return result("jpx"), true, nil
	case d.checkString("jpm ", 20):
		return result("jpm"), true, nil
	case d.checkString("mjp2", 20):
		return result("mj2"), true, nil
	}
	return Result{}, false, nil
}
