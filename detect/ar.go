package detect

// probeAR recognizes the common Unix archive magic "!<arch>" and
// distinguishes a Debian package (whose first archive member is named
// "debian-binary") from a plain ar archive.
func (d *dispatcher) probeAR() (Result, bool, error) {
	if !d.checkString("!<arch>", 0) {
		return Result{}, false, nil
	}
	if !d.have(21) {
		return Result{}, false, nil
	}
	if d.checkString("debian-binary", 8) {
		return result("deb"), true, nil
	}
	return result("ar"), true, nil
}
