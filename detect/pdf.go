package detect

import "bytes"

const (
	pdfSkipBytes  = 1350
	pdfMaxScan    = 10 << 20 // 10 MiB
	pdfScanChunk  = 64 << 10
)

// probePDF recognizes "%PDF" and scans ahead (well past the dispatcher's
// normal sample window — this is the one probe explicitly allowed to read
// deep into the file per the spec's escape hatch for recursive/explicit
// reads) for the "AIPrivateData" marker Adobe Illustrator embeds in its
// PDF-compatible save format; absent that marker it's plain pdf.
func (d *dispatcher) probePDF() (Result, bool, error) {
	if !d.checkString("%PDF", 0) {
		return Result{}, false, nil
	}

	start := d.t.Position() + pdfSkipBytes
	limit := d.size
	if start+pdfMaxScan < limit {
		limit = start + pdfMaxScan
	}
	if limit <= start {
		return result("pdf"), true, nil
	}

	found := false
	marker := []byte("AIPrivateData")
	overlap := len(marker) - 1
	var carry []byte
	for pos := start; pos < limit && !found; pos += pdfScanChunk {
		n := pdfScanChunk
		if int64(n) > limit-pos {
			n = int(limit - pos)
		}
		buf := make([]byte, n)
		got, err := d.t.PeekBufferAt(buf, pos, true)
		if err != nil {
			return Result{}, false, err
		}
		window := append(carry, buf[:got]...)
		if bytes.Contains(window, marker) {
			found = true
			break
		}
		if len(window) > overlap {
			carry = append([]byte(nil), window[len(window)-overlap:]...)
		} else {
			carry = window
		}
		if got < n {
			break
		}
	}

	if found {
		return result("ai"), true, nil
	}
	return result("pdf"), true, nil
}
