package catalog

import "testing"

func TestExtensionsAndMimeTypesMembership(t *testing.T) {
	exts := Extensions()
	mimes := MimeTypes()

	if !exts.Has("png") {
		t.Error("expected png in Extensions")
	}
	if !mimes.Has("image/png") {
		t.Error("expected image/png in MimeTypes")
	}
	if exts.Has("not-a-real-extension") {
		t.Error("unexpected extension matched")
	}
}

func TestSetsAreIndependentNotOneToOne(t *testing.T) {
	// Several extensions share a MIME type (m4p/f4v/f4p all map to
	// video/mp4); MimeTypes must not carry one entry per extension.
	mp4Sharers := 0
	for _, e := range Entries() {
		if e.Mime == "video/mp4" {
			mp4Sharers++
		}
	}
	if mp4Sharers < 2 {
		t.Fatalf("expected multiple extensions sharing video/mp4, got %d", mp4Sharers)
	}
}

func TestOrderIsStable(t *testing.T) {
	a := Extensions().All()
	b := Extensions().All()
	if len(a) != len(b) {
		t.Fatal("length changed between calls")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order changed at %d: %q vs %q", i, a[i], b[i])
		}
	}
}
