package detect

import (
	"fmt"
	"testing"

	"github.com/sniffgo/sniff/token"
	"github.com/sniffgo/sniff/tokenizer"
)

func detectBuffer(t *testing.T, b []byte) (Result, bool) {
	t.Helper()
	tok := tokenizer.NewMemoryTokenizer(b, tokenizer.FileInfo{})
	res, ok, err := DetectFromTokenizer(tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res, ok
}

func TestPNGWithIDAT(t *testing.T) {
	buf := append([]byte{}, pngMagic...)
	buf = append(buf, pngChunk("IHDR", make([]byte, 13))...)
	buf = append(buf, pngChunk("IDAT", []byte{0, 1, 2, 3})...)

	res, ok := detectBuffer(t, buf)
	if !ok || res.Ext != "png" || res.Mime != "image/png" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestPNGWithACTLBeforeIDATIsAPNG(t *testing.T) {
	buf := append([]byte{}, pngMagic...)
	buf = append(buf, pngChunk("IHDR", make([]byte, 13))...)
	buf = append(buf, pngChunk("acTL", []byte{0, 0, 0, 1, 0, 0, 0, 0})...)
	buf = append(buf, pngChunk("IDAT", []byte{0, 1, 2, 3})...)

	res, ok := detectBuffer(t, buf)
	if !ok || res.Ext != "apng" || res.Mime != "image/apng" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func pngChunk(typ string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+4)
	length := []byte{
		byte(len(payload) >> 24), byte(len(payload) >> 16),
		byte(len(payload) >> 8), byte(len(payload)),
	}
	out = append(out, length...)
	out = append(out, []byte(typ)...)
	out = append(out, payload...)
	out = append(out, 0, 0, 0, 0) // CRC, not validated
	return out
}

func zipLocalFileEntry(filename string, payload []byte) []byte {
	hdr := make([]byte, 30)
	copy(hdr[0:4], zipLocalFileHeader)
	csize := len(payload)
	hdr[18] = byte(csize)
	hdr[19] = byte(csize >> 8)
	hdr[22] = byte(csize)
	hdr[23] = byte(csize >> 8)
	hdr[26] = byte(len(filename))
	hdr[27] = byte(len(filename) >> 8)
	out := append([]byte{}, hdr...)
	out = append(out, []byte(filename)...)
	out = append(out, payload...)
	return out
}

func TestZipWithWordDocumentIsDocx(t *testing.T) {
	buf := zipLocalFileEntry("word/document.xml", []byte("<xml/>"))
	// pad so position+30 < size check inside the walk doesn't bail too early
	buf = append(buf, make([]byte, 64)...)

	res, ok := detectBuffer(t, buf)
	want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	if !ok || res.Ext != "docx" || res.Mime != want {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestZipPlainDefaultsToZip(t *testing.T) {
	buf := zipLocalFileEntry("readme.txt", []byte("hello"))
	buf = append(buf, make([]byte, 64)...)

	res, ok := detectBuffer(t, buf)
	if !ok || res.Ext != "zip" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func tarHeaderWithChecksum() []byte {
	buf := make([]byte, tarHeaderSize)
	copy(buf[0:], "payload.bin")
	copy(buf[257:], "ustar\x0000")
	var sum int64
	for i := 0; i < 148; i++ {
		sum += int64(buf[i])
	}
	sum += 8 * 0x20
	for i := 156; i < tarHeaderSize; i++ {
		sum += int64(buf[i])
	}
	chk := fmt.Sprintf("%06o\x00 ", sum)
	copy(buf[148:156], chk)
	return buf
}

func TestTARValidChecksum(t *testing.T) {
	buf := tarHeaderWithChecksum()
	res, ok := detectBuffer(t, buf)
	if !ok || res.Ext != "tar" || res.Mime != "application/x-tar" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestTARInvalidChecksumNoMatch(t *testing.T) {
	buf := tarHeaderWithChecksum()
	buf[0] ^= 0xff // corrupt a byte covered by the checksum
	_, ok := detectBuffer(t, buf)
	if ok {
		t.Fatal("expected no match for a corrupted TAR checksum")
	}
}

func TestID3v2TagFollowedByMP3Frame(t *testing.T) {
	tagLen := token.EncodeSyncSafe32(257)
	buf := []byte("ID3")
	buf = append(buf, 0x04, 0x00, 0x00)
	buf = append(buf, tagLen[:]...)
	buf = append(buf, make([]byte, 257)...)
	buf = append(buf, 0xff, 0xfb, 0x90, 0x00)
	buf = append(buf, make([]byte, 128)...) // fill past the 256-byte escalation point

	res, ok := detectBuffer(t, buf)
	if !ok || res.Ext != "mp3" || res.Mime != "audio/mpeg" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestISOBMFFAvif(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'a', 'v', 'i', 'f', 0, 0, 0, 0}
	buf = append(buf, make([]byte, 16)...)

	res, ok := detectBuffer(t, buf)
	if !ok || res.Ext != "avif" || res.Mime != "image/avif" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestEmptyInputNoMatch(t *testing.T) {
	tok := tokenizer.NewMemoryTokenizer(nil, tokenizer.FileInfo{})
	res, ok, err := DetectFromTokenizer(tok)
	if err != nil || ok {
		t.Fatalf("got %+v ok=%v err=%v", res, ok, err)
	}
}

func TestUnrecognizedInputNoMatch(t *testing.T) {
	_, ok := detectBuffer(t, []byte("just some plain text, nothing special here"))
	if ok {
		t.Fatal("expected no match")
	}
}

func TestDetectionIsDeterministic(t *testing.T) {
	buf := append([]byte{}, pngMagic...)
	buf = append(buf, pngChunk("IDAT", []byte{1, 2, 3})...)

	r1, ok1 := detectBuffer(t, buf)
	r2, ok2 := detectBuffer(t, buf)
	if ok1 != ok2 || r1 != r2 {
		t.Fatalf("non-deterministic: %+v/%v vs %+v/%v", r1, ok1, r2, ok2)
	}
}

func TestUTF8BOMRecursesToSameResult(t *testing.T) {
	inner := append([]byte{}, pngMagic...)
	inner = append(inner, pngChunk("IDAT", []byte{1, 2, 3})...)

	withBOM := append([]byte{0xef, 0xbb, 0xbf}, inner...)

	r1, ok1 := detectBuffer(t, inner)
	r2, ok2 := detectBuffer(t, withBOM)
	if ok1 != ok2 || r1 != r2 {
		t.Fatalf("BOM changed result: %+v/%v vs %+v/%v", r1, ok1, r2, ok2)
	}
}
