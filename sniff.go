// Package sniff identifies the file format of a byte stream by inspecting
// a bounded prefix of its content, returning an {ext, mime} pair drawn from
// a closed catalog or reporting no match. It does not look at filenames,
// validate deep structural integrity, or decode payloads — see
// github.com/sniffgo/sniff/catalog for the closed set of recognized
// formats and github.com/sniffgo/sniff/detect for the dispatcher doing the
// actual signature matching.
package sniff

import (
	"io"
	"os"

	"github.com/sniffgo/sniff/detect"
	"github.com/sniffgo/sniff/source"
	"github.com/sniffgo/sniff/tokenizer"
)

// Result is the detected format.
type Result = detect.Result

// FileInfo is the caller-supplied hint accepted by FromBuffer/FromStream.
type FileInfo = tokenizer.FileInfo

// FromBuffer builds a Tokenizer over an in-memory byte slice. b is not
// copied; callers must not mutate it while the tokenizer is in use.
func FromBuffer(b []byte, info FileInfo) *tokenizer.MemoryTokenizer {
	return tokenizer.NewMemoryTokenizer(b, info)
}

// FromStream builds a Tokenizer over a one-shot io.Reader.
func FromStream(r io.Reader, info FileInfo) *tokenizer.StreamTokenizer {
	return tokenizer.NewStreamTokenizer(source.NewStreamSource(r), info)
}

// DetectFromBuffer wraps FromBuffer. Per the reference's own boundary
// behavior, a buffer of length <= 1 can never carry a recognizable
// signature and is reported as no match without even constructing a
// tokenizer.
func DetectFromBuffer(b []byte) (Result, bool) {
	if len(b) <= 1 {
		return Result{}, false
	}
	t := FromBuffer(b, FileInfo{})
	res, ok, _ := detect.DetectFromTokenizer(t)
	return res, ok
}

// DetectFromStream wraps FromStream and always closes the tokenizer before
// returning, regardless of whether a match was found.
func DetectFromStream(r io.Reader) (Result, bool) {
	t := FromStream(r, FileInfo{})
	defer t.Close()
	res, ok, _ := detect.DetectFromTokenizer(t)
	return res, ok
}

// DetectFromTokenizer is the core dispatcher entry point for a
// caller-constructed Tokenizer (e.g. one built with a known size from
// DetectFromFile, or directly against a custom Source implementation).
func DetectFromTokenizer(t tokenizer.Tokenizer) (Result, bool) {
	res, ok, _ := detect.DetectFromTokenizer(t)
	return res, ok
}

// DetectFromFile opens path and detects its format, giving the tokenizer a
// known size up front the way any seekable, sized source should. This
// resolves the filesystem-opener gap the spec leaves as an external
// collaborator: the reference never shipped one, so this is built the same
// way the teacher's own msf.Open builds atop os.Open+Stat.
func DetectFromFile(path string) (Result, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, false, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return Result{}, false, err
	}
	size := st.Size()

	t := tokenizer.NewStreamTokenizer(source.NewStreamSource(f), FileInfo{Size: &size})
	defer t.Close()
	res, ok, err := detect.DetectFromTokenizer(t)
	if err != nil {
		return Result{}, false, err
	}
	return res, ok, nil
}
