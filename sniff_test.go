package sniff

import (
	"bytes"
	"testing"
)

func TestDetectFromBufferBoundaries(t *testing.T) {
	if _, ok := DetectFromBuffer(nil); ok {
		t.Error("empty input should not match")
	}
	if _, ok := DetectFromBuffer([]byte{0x89}); ok {
		t.Error("one-byte input should not match")
	}
}

func pngBytes() []byte {
	buf := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	chunk := func(typ string, payload []byte) []byte {
		out := []byte{
			byte(len(payload) >> 24), byte(len(payload) >> 16),
			byte(len(payload) >> 8), byte(len(payload)),
		}
		out = append(out, []byte(typ)...)
		out = append(out, payload...)
		return append(out, 0, 0, 0, 0)
	}
	buf = append(buf, chunk("IHDR", make([]byte, 13))...)
	buf = append(buf, chunk("IDAT", []byte{1, 2, 3})...)
	return buf
}

func TestDetectFromBufferPNG(t *testing.T) {
	res, ok := DetectFromBuffer(pngBytes())
	if !ok || res.Ext != "png" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestDetectFromStreamMatchesDetectFromBuffer(t *testing.T) {
	data := pngBytes()
	wantRes, wantOK := DetectFromBuffer(data)

	gotRes, gotOK := DetectFromStream(bytes.NewReader(data))
	if gotOK != wantOK || gotRes != wantRes {
		t.Fatalf("stream detection diverged: %+v/%v vs %+v/%v", gotRes, gotOK, wantRes, wantOK)
	}
}
