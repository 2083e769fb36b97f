package token

import "testing"

func TestFixedWidthRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		tok  interface{ Len() int }
		enc  func(v uint64) []byte
		dec  func([]byte) uint64
		vals []uint64
	}{
		{
			name: "U16LE",
			tok:  U16LE,
			enc:  func(v uint64) []byte { return []byte{byte(v), byte(v >> 8)} },
			dec:  func(b []byte) uint64 { return uint64(U16LE.Decode(b)) },
			vals: []uint64{0, 1, 0xff, 0xffff},
		},
		{
			name: "U16BE",
			tok:  U16BE,
			enc:  func(v uint64) []byte { return []byte{byte(v >> 8), byte(v)} },
			dec:  func(b []byte) uint64 { return uint64(U16BE.Decode(b)) },
			vals: []uint64{0, 1, 0xff, 0xffff},
		},
		{
			name: "U32LE",
			tok:  U32LE,
			enc:  func(v uint64) []byte { return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)} },
			dec:  func(b []byte) uint64 { return uint64(U32LE.Decode(b)) },
			vals: []uint64{0, 1, 0xdeadbeef, 0xffffffff},
		},
		{
			name: "U64LE",
			tok:  U64LE,
			enc: func(v uint64) []byte {
				b := make([]byte, 8)
				for i := 0; i < 8; i++ {
					b[i] = byte(v >> (8 * i))
				}
				return b
			},
			dec:  func(b []byte) uint64 { return U64LE.Decode(b) },
			vals: []uint64{0, 1, 0xffffffffffffffff},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			for _, v := range c.vals {
				got := c.dec(c.enc(v))
				if got != v {
					t.Errorf("round-trip %d: got %d", v, got)
				}
			}
		})
	}
}

func TestSyncSafe32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 1 << 27, (1 << 28) - 1} {
		enc := EncodeSyncSafe32(v)
		got := SyncSafe32.Decode(enc[:])
		if got != v {
			t.Errorf("SyncSafe32 round-trip %d: got %d", v, got)
		}
	}
}

func TestSyncSafe32HighBitIgnored(t *testing.T) {
	// Setting the high bit of each byte must not change the decoded value.
	b := [4]byte{0x81, 0x82, 0x83, 0x84}
	clean := [4]byte{0x01, 0x02, 0x03, 0x04}
	if SyncSafe32.Decode(b[:]) != SyncSafe32.Decode(clean[:]) {
		t.Error("high bit of sync-safe bytes should be masked off")
	}
}

func TestFixedStringTrimsTrailingNUL(t *testing.T) {
	f := FixedString{N: 8}
	got := f.Decode([]byte("abc\x00\x00\x00\x00\x00"))
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestFixedStringNoPadding(t *testing.T) {
	f := FixedString{N: 5}
	got := f.Decode([]byte("hello"))
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}
