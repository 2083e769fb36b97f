package detect

// probeMPEGAudio only runs after the sample has escalated to 256 bytes: it
// requires the 11-bit MPEG frame sync (0xFFE) at the very start, then reads
// the layer bits out of byte 1 to tell ADTS (AAC), MP1, MP2, and MP3 apart.
func (d *dispatcher) probeMPEGAudio() (Result, bool, error) {
	if !d.have(2) {
		return Result{}, false, nil
	}
	if !d.check([]byte{0xff, 0xe0}, 0, []byte{0xff, 0xe0}) {
		return Result{}, false, nil
	}
	b1 := d.sample[1]
	if b1&0x16 == 0x10 {
		return result("aac"), true, nil
	}
	switch b1 & 0x06 {
	case 0x02:
		return result("mp3"), true, nil
	case 0x04:
		return result("mp2"), true, nil
	case 0x06:
		return result("mp1"), true, nil
	}
	return Result{}, false, nil
}
