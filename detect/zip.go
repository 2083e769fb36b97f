package detect

import (
	"bytes"
	"encoding/binary"
	"strings"
)

var zipLocalFileHeader = []byte{0x50, 0x4b, 0x03, 0x04}

// probeZip recognizes a ZIP local-file-header directory and walks it entry
// by entry, looking for the filename patterns that distinguish OOXML
// (docx/pptx/xlsx), ODF (odt/ods/odp), EPUB, XPI, and 3MF from a plain
// zip. Detection ends at the first recognized filename; the walk gives up
// and reports plain zip at end-of-stream or once position runs past size.
func (d *dispatcher) probeZip() (Result, bool, error) {
	if !d.check(zipLocalFileHeader, 0, nil) {
		return Result{}, false, nil
	}

	for {
		pos := d.t.Position()
		if pos+30 >= d.size {
			break
		}

		hdr := make([]byte, 30)
		n, err := d.t.ReadBuffer(hdr, true)
		if err != nil {
			return Result{}, false, err
		}
		if n < 30 {
			break
		}
		if !bytes.Equal(hdr[0:4], zipLocalFileHeader) {
			if !d.zipResync() {
				break
			}
			continue
		}

		compressedSize := binary.LittleEndian.Uint32(hdr[18:22])
		uncompressedSize := binary.LittleEndian.Uint32(hdr[22:26])
		filenameLen := binary.LittleEndian.Uint16(hdr[26:28])
		extraLen := binary.LittleEndian.Uint16(hdr[28:30])

		nameBuf := make([]byte, filenameLen)
		nn, err := d.t.ReadBuffer(nameBuf, true)
		if err != nil {
			return Result{}, false, err
		}
		filename := string(nameBuf[:nn])

		if _, err := d.t.Ignore(int64(extraLen)); err != nil {
			return Result{}, false, err
		}

		if res, ok, consumedPayload, err := d.zipClassifyEntry(filename, compressedSize, uncompressedSize); err != nil {
			return Result{}, false, err
		} else if ok {
			return res, true, nil
		} else if consumedPayload {
			continue
		}

		if compressedSize == 0 {
			if !d.zipResync() {
				break
			}
			continue
		}
		if _, err := d.t.Ignore(int64(compressedSize)); err != nil {
			return Result{}, false, err
		}
	}

	return result("zip"), true, nil
}

const maxZipMimetypePayload = 1 << 20

// zipClassifyEntry inspects one local-file-header's filename (and, for the
// ODF/EPUB "mimetype" marker, its payload) and decides whether this ZIP is one
// of the recognized OOXML/ODF/EPUB/XPI/3MF sub-formats. consumedPayload is
// true when this call already read past the entry's data (the "mimetype"
// case), so the caller must not skip compressedSize again.
func (d *dispatcher) zipClassifyEntry(filename string, compressedSize, uncompressedSize uint32) (Result, bool, bool, error) {
	switch {
	case filename == "META-INF/mozilla.rsa":
		return result("xpi"), true, false, nil

	case strings.HasPrefix(filename, "_rels/") || strings.HasSuffix(filename, ".rels") || strings.HasSuffix(filename, ".xml"):
		first := filename
		if i := strings.IndexByte(filename, '/'); i >= 0 {
			first = filename[:i]
		}
		switch first {
		case "word":
			return result("docx"), true, false, nil
		case "ppt":
			return result("pptx"), true, false, nil
		case "xl":
			return result("xlsx"), true, false, nil
		case "_rels":
			return Result{}, false, false, nil
		}
		return Result{}, false, false, nil

	case strings.HasPrefix(filename, "xl/"):
		return result("xlsx"), true, false, nil

	case strings.HasPrefix(filename, "3D/") && strings.HasSuffix(filename, ".model"):
		return result("3mf"), true, false, nil

	case filename == "mimetype" && compressedSize == uncompressedSize:
		if uncompressedSize > maxZipMimetypePayload {
			return Result{}, false, false, nil
		}
		payload := make([]byte, uncompressedSize)
		n, err := d.t.ReadBuffer(payload, true)
		if err != nil {
			return Result{}, false, false, err
		}
		switch strings.TrimSpace(string(payload[:n])) {
		case "application/epub+zip":
			return result("epub"), true, true, nil
		case "application/vnd.oasis.opendocument.text":
			return result("odt"), true, true, nil
		case "application/vnd.oasis.opendocument.spreadsheet":
			return result("ods"), true, true, nil
		case "application/vnd.oasis.opendocument.presentation":
			return result("odp"), true, true, nil
		}
		return Result{}, false, true, nil
	}
	return Result{}, false, false, nil
}

const zipResyncWindow = 4096

// zipResync is used when an entry's compressed size is zero (commonly
// meaning a data-descriptor-trailed entry whose real size isn't in the
// local header), and when the 30 bytes just read as a header do not start
// with the local file header signature: it scans the next window of bytes for the next local
// file header signature and skips to it, or past the whole window when
// none is found.
func (d *dispatcher) zipResync() bool {
	buf := make([]byte, zipResyncWindow)
	n, _ := d.t.PeekBuffer(buf, true)
	if n == 0 {
		return false
	}
	if idx := bytes.Index(buf[:n], zipLocalFileHeader); idx >= 0 {
		if idx > 0 {
			if _, err := d.t.Ignore(int64(idx)); err != nil {
				return false
			}
		}
		return true
	}
	if _, err := d.t.Ignore(int64(n)); err != nil {
		return false
	}
	return n == zipResyncWindow
}
