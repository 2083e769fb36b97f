package detect

import (
	"strconv"
	"strings"
)

const tarHeaderSize = 512

// probeTAR validates the USTAR-style header checksum at offset 148..154:
// the stored value is the unsigned byte sum of the whole 512-byte header
// with the checksum field itself treated as eight ASCII spaces. A real TAR
// header satisfies this exactly; arbitrary data essentially never does, so
// the checksum alone is a reliable enough signature without a magic-string
// check.
func (d *dispatcher) probeTAR() (Result, bool, error) {
	if !d.have(tarHeaderSize) {
		return Result{}, false, nil
	}
	field := d.sample[148:156]
	end := 0
	for end < len(field) && field[end] != 0 {
		end++
	}
	stored, err := strconv.ParseInt(strings.TrimSpace(string(field[:end])), 8, 64)
	if err != nil {
		return Result{}, false, nil
	}

	var sum int64
	for i := 0; i < 148; i++ {
		sum += int64(d.sample[i])
	}
	sum += 8 * 0x20
	for i := 156; i < tarHeaderSize; i++ {
		sum += int64(d.sample[i])
	}

	if sum == stored {
		return result("tar"), true, nil
	}
	return Result{}, false, nil
}
