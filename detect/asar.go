package detect

import (
	"encoding/binary"
	"encoding/json"
)

// probeASAR recognizes Electron's ASAR archive format, which wraps a
// length-prefixed JSON header inside a Chromium "Pickle" framing. A
// malformed or incomplete JSON header is not an error here — it just
// means this isn't an ASAR archive, per the spec's DecodeFailure handling.
func (d *dispatcher) probeASAR() (Result, bool, error) {
	if !d.check([]byte{0x04, 0x00, 0x00, 0x00}, 0, nil) {
		return Result{}, false, nil
	}
	if !d.have(16) {
		return Result{}, false, nil
	}
	jsonSize := binary.LittleEndian.Uint32(d.sample[12:16])
	if jsonSize <= 12 {
		return Result{}, false, nil
	}
	end := 16 + int(jsonSize)
	if err := d.ensure(end); err != nil {
		return Result{}, false, err
	}
	if !d.have(end) {
		return Result{}, false, nil
	}

	var header map[string]json.RawMessage
	if err := json.Unmarshal(d.sample[16:end], &header); err != nil {
		return Result{}, false, nil
	}
	if _, ok := header["files"]; ok {
		return result("asar"), true, nil
	}
	return Result{}, false, nil
}
