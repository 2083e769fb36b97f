package sniff

import (
	"bytes"
	"io"
	"testing"
)

type fakeObserver struct {
	res Result
	ok  bool
	n   int
}

func (f *fakeObserver) Observe(res Result, ok bool) {
	f.res, f.ok = res, ok
	f.n++
}

func TestPassthroughReplaysOriginalBytes(t *testing.T) {
	data := pngBytes()
	data = append(data, []byte("trailing payload bytes that follow the sample")...)

	p := NewPassthrough(bytes.NewReader(data), 0, nil)
	got, err := io.ReadAll(p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("passthrough did not reproduce the original stream")
	}

	res, ok := p.FileType()
	if !ok || res.Ext != "png" {
		t.Fatalf("got %+v ok=%v", res, ok)
	}
}

func TestPassthroughReportsToMetricsObserver(t *testing.T) {
	obs := &fakeObserver{}
	data := pngBytes()

	p := NewPassthrough(bytes.NewReader(data), 0, obs)

	if obs.n != 1 {
		t.Fatalf("expected exactly one Observe call, got %d", obs.n)
	}
	if !obs.ok || obs.res.Ext != "png" {
		t.Fatalf("observer saw %+v ok=%v", obs.res, obs.ok)
	}
	_, _ = p.FileType()
}
