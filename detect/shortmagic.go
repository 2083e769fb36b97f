package detect

// magic is one fixed-offset, fixed-length signature check paired with the
// extension it selects.
type magic struct {
	ext    string
	header []byte
	offset int
	mask   []byte
}

// shortMagics are the cheap, 2..9-byte, offset-0-or-near fixed signatures
// that need no escalation past the initial 12-byte peek and no container
// walk. Checked in declaration order; the first match wins, so more
// specific/longer signatures that share a prefix with a shorter one must
// come first.
var shortMagics = []magic{
	{"ico", []byte{0x00, 0x00, 0x01, 0x00}, 0, nil},
	{"flif", []byte{0x46, 0x4c, 0x49, 0x46}, 0, nil},
	{"gif", []byte{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, 0, nil},
	{"gif", []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}, 0, nil},
	{"jpg", []byte{0xff, 0xd8, 0xff}, 0, nil},
	{"psd", []byte{0x38, 0x42, 0x50, 0x53}, 0, nil},
	{"jxr", []byte{0x49, 0x49, 0xbc}, 0, nil},
	{"sqlite", []byte("SQLi"), 0, nil},
	{"wasm", []byte{0x00, 0x61, 0x73, 0x6d}, 0, nil},
	{"class", []byte{0xca, 0xfe, 0xba, 0xbe}, 0, nil},
	{"swf", []byte{0x43, 0x57, 0x53}, 0, nil},
	{"swf", []byte{0x46, 0x57, 0x53}, 0, nil},
	{"elf", []byte{0x7f, 0x45, 0x4c, 0x46}, 0, nil},
	{"crx", []byte("Cr24"), 0, nil},
	{"exe", []byte{0x4d, 0x5a}, 0, nil},
	{"rar", []byte{0x52, 0x61, 0x72, 0x21, 0x1a, 0x07}, 0, nil},
	{"7z", []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}, 0, nil},
	{"gz", []byte{0x1f, 0x8b}, 0, nil},
	{"bz2", []byte("BZh"), 0, nil},
	{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, 0, nil},
	{"zst", []byte{0x28, 0xb5, 0x2f, 0xfd}, 0, nil},
	{"lz", []byte("LZIP"), 0, nil},
	{"Z", []byte{0x1f, 0x9d}, 0, nil},
	{"flac", []byte("fLaC"), 0, nil},
	{"mid", []byte("MThd"), 0, nil},
	{"amr", []byte("#!AMR"), 0, nil},
}

func (d *dispatcher) probeShortMagics() (Result, bool, error) {
	for _, m := range shortMagics {
		if d.check(m.header, m.offset, m.mask) {
			return result(m.ext), true, nil
		}
	}
	if res, ok := d.probeFormContainer(); ok {
		return res, true, nil
	}
	return Result{}, false, nil
}

// probeFormContainer recognizes the IFF "FORM"-size-"AIFF" shape AIFF
// shares with RIFF's own "RIFF"-size-"WAVE" layout.
func (d *dispatcher) probeFormContainer() (Result, bool) {
	if d.checkString("FORM", 0) && d.checkString("AIFF", 8) {
		return result("aiff"), true
	}
	return Result{}, false
}
