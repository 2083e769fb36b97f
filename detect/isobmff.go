package detect

import "strings"

// probeISOBMFF recognizes the ISO base media "ftyp" box at offset 4 and
// maps its 4-byte major brand to an extension.
func (d *dispatcher) probeISOBMFF() (Result, bool, error) {
	if !d.checkString("ftyp", 4) {
		return Result{}, false, nil
	}
	if !d.have(12) {
		return Result{}, false, nil
	}
	// Brand major must look like printable ASCII; a high nibble of 0 on
	// byte 8 indicates this isn't really a brand (some other box at this
	// offset coincidentally spelling "ftyp").
	if d.sample[8]>>4 == 0 {
		return Result{}, false, nil
	}

	brand := make([]byte, 4)
	copy(brand, d.sample[8:12])
	for i, b := range brand {
		if b == 0 {
			brand[i] = ' '
		}
	}
	major := strings.TrimSpace(string(brand))

	switch major {
	case "avif":
		return result("avif"), true, nil
	case "avis":
		return result("avis"), true, nil
	case "mif1":
		return result("mif1"), true, nil
	case "msf1":
		return result("msf1"), true, nil
	case "heic", "heix":
		return result(major), true, nil
	case "hevc", "hevx":
		return result(major), true, nil
	case "qt":
		return result("qt"), true, nil
	case "M4V", "M4VH", "M4VP":
		return result("m4v"), true, nil
	case "M4P":
		return result("m4p"), true, nil
	case "M4B":
		return result("m4b"), true, nil
	case "M4A":
		return result("m4a"), true, nil
	case "F4V", "F4P", "F4A", "F4B":
		return result(strings.ToLower(major)), true, nil
	case "crx":
		return result("cr3"), true, nil
	}
	if strings.HasPrefix(major, "3g2") {
		return result("3g2"), true, nil
	}
	if strings.HasPrefix(major, "3g") {
		return result("3gp"), true, nil
	}
	return result("mp4"), true, nil
}
