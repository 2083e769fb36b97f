package detect

// oggCodecMagics are matched against the 8 bytes starting at offset 28 of
// an Ogg page (the page header is 27+ bytes; 28 is where the first
// packet's own codec identifier starts for every codec this probe knows
// about). No prefix here is a prefix of another, so their order does not
// change the result.
var oggCodecMagics = []magic{
	{"opus", []byte("OpusHead"), 28, nil},
	{"ogv", []byte{0x80, 't', 'h', 'e', 'o', 'r', 'a'}, 28, nil},
	{"ogm", []byte{0x01, 'v', 'i', 'd', 'e', 'o', 0x00}, 28, nil},
	{"oga", []byte{0x7f, 'F', 'L', 'A', 'C'}, 28, nil},
	{"spx", []byte("Speex  "), 28, nil},
	{"ogg", []byte{0x01, 'v', 'o', 'r', 'b', 'i', 's'}, 28, nil},
}

// probeOgg recognizes the "OggS" capture pattern and distinguishes the
// container's specific codec by the bytes immediately following the first
// page header; an Ogg stream carrying a codec this probe doesn't recognize
// still reports the generic "ogx" container extension.
func (d *dispatcher) probeOgg() (Result, bool, error) {
	if !d.checkString("OggS", 0) {
		return Result{}, false, nil
	}
	if err := d.ensure(36); err != nil {
		return Result{}, false, err
	}
	for _, m := range oggCodecMagics {
		if d.check(m.header, m.offset, m.mask) {
			return result(m.ext), true, nil
		}
	}
	return result("ogx"), true, nil
}
