package detect

// catchAllMagics groups every remaining fixed-offset signature this
// dispatcher knows about; all of them are checked only once the sample has
// escalated to 256 bytes. DICOM, MOBI and S3M live far into the file; the
// two WOFF variants, InDesign, LNK and the macOS alias record sit at offset
// 0. probeCatchAllsLate adds EOT and the Shapefile header after this table.
var catchAllMagics = []magic{
	{"woff", []byte("wOFF"), 0, nil},
	{"woff2", []byte("wOF2"), 0, nil},
	{"indd", []byte{0x06, 0x06, 0xed, 0xf5, 0xd8, 0x1d, 0x46, 0xe5, 0xbd, 0x31, 0xef, 0xe7, 0xfe, 0x74, 0xb7, 0x1d}, 0, nil},
	{"lnk", []byte{0x4c, 0x00, 0x00, 0x00, 0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}, 0, nil},
	{"alias", []byte{0x62, 0x6f, 0x6f, 0x6b, 0x00, 0x00, 0x00, 0x00, 0x6d, 0x61, 0x72, 0x6b, 0x00, 0x00, 0x00, 0x00}, 0, nil},
	{"dcm", []byte("DICM"), 128, nil},
	{"mobi", []byte("BOOKMOBI"), 60, nil},
	{"s3m", []byte("SCRM"), 44, nil},
}

var eotPrefixes = [][]byte{
	{0x00, 0x00, 0x01},
	{0x01, 0x00, 0x02},
	{0x02, 0x00, 0x02},
}

func (d *dispatcher) probeCatchAllsLate() (Result, bool, error) {
	for _, m := range catchAllMagics {
		if d.check(m.header, m.offset, m.mask) {
			return result(m.ext), true, nil
		}
	}
	if d.check([]byte{0x4c, 0x50}, 34, nil) {
		for _, prefix := range eotPrefixes {
			if d.check(prefix, 8, nil) {
				return result("eot"), true, nil
			}
		}
	}
	if d.check([]byte{0x00, 0x00, 0x27, 0x0a}, 0, nil) &&
		d.check(make([]byte, 10), 4, nil) {
		return result("shp"), true, nil
	}
	return Result{}, false, nil
}
