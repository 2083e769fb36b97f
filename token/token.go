// Package token defines the fixed-width, stateless descriptors used by the
// tokenizer to decode bytes read from a byte source. A Token only knows its
// length and how to turn a slice of exactly that length into a Go value; it
// never touches a source itself.
package token

import "encoding/binary"

// A Token decodes a fixed-length byte slice into a value of type T.
// Implementations must be pure: the same bytes always decode to the same
// value, and decoding never mutates src.
type Token[T any] interface {
	// Len is the number of bytes Decode requires.
	Len() int
	// Decode interprets src[0:Len()] as T. Callers guarantee len(src) >= Len().
	Decode(src []byte) T
}

type fixedToken[T any] struct {
	length int
	decode func([]byte) T
}

func (f fixedToken[T]) Len() int            { return f.length }
func (f fixedToken[T]) Decode(src []byte) T { return f.decode(src) }

// U8 reads a single unsigned byte.
var U8 Token[uint8] = fixedToken[uint8]{1, func(b []byte) uint8 { return b[0] }}

// I8 reads a single signed byte.
var I8 Token[int8] = fixedToken[int8]{1, func(b []byte) int8 { return int8(b[0]) }}

// U16LE reads a little-endian unsigned 16-bit integer.
var U16LE Token[uint16] = fixedToken[uint16]{2, func(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }}

// U16BE reads a big-endian unsigned 16-bit integer.
var U16BE Token[uint16] = fixedToken[uint16]{2, func(b []byte) uint16 { return binary.BigEndian.Uint16(b) }}

// I16LE reads a little-endian signed 16-bit integer.
var I16LE Token[int16] = fixedToken[int16]{2, func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) }}

// I16BE reads a big-endian signed 16-bit integer.
var I16BE Token[int16] = fixedToken[int16]{2, func(b []byte) int16 { return int16(binary.BigEndian.Uint16(b)) }}

// U32LE reads a little-endian unsigned 32-bit integer.
var U32LE Token[uint32] = fixedToken[uint32]{4, func(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }}

// U32BE reads a big-endian unsigned 32-bit integer.
var U32BE Token[uint32] = fixedToken[uint32]{4, func(b []byte) uint32 { return binary.BigEndian.Uint32(b) }}

// I32LE reads a little-endian signed 32-bit integer.
var I32LE Token[int32] = fixedToken[int32]{4, func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) }}

// I32BE reads a big-endian signed 32-bit integer.
var I32BE Token[int32] = fixedToken[int32]{4, func(b []byte) int32 { return int32(binary.BigEndian.Uint32(b)) }}

// U64LE reads a little-endian unsigned 64-bit integer.
var U64LE Token[uint64] = fixedToken[uint64]{8, func(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }}

// U64BE reads a big-endian unsigned 64-bit integer.
var U64BE Token[uint64] = fixedToken[uint64]{8, func(b []byte) uint64 { return binary.BigEndian.Uint64(b) }}

// SyncSafe32 decodes the ID3v2 "sync-safe" 32-bit field: 4 bytes, each
// contributing its low 7 bits, high bit always clear. 28 usable payload bits.
type syncSafe32 struct{}

func (syncSafe32) Len() int { return 4 }
func (syncSafe32) Decode(b []byte) uint32 {
	return uint32(b[0]&0x7f)<<21 | uint32(b[1]&0x7f)<<14 | uint32(b[2]&0x7f)<<7 | uint32(b[3]&0x7f)
}

// SyncSafe32 is the ID3v2 sync-safe 28-bit-payload, 4-byte-wide token.
var SyncSafe32 Token[uint32] = syncSafe32{}

// EncodeSyncSafe32 is the inverse of SyncSafe32.Decode, used by tests to
// exercise the round-trip property and available to callers that need to
// synthesize ID3v2 headers.
func EncodeSyncSafe32(v uint32) [4]byte {
	return [4]byte{
		byte((v >> 21) & 0x7f),
		byte((v >> 14) & 0x7f),
		byte((v >> 7) & 0x7f),
		byte(v & 0x7f),
	}
}

// FixedString reads n bytes and returns them as a string, trimming trailing
// NUL padding the way fixed-width ASCII/UTF-8 fields are conventionally
// stored in binary container formats.
type FixedString struct {
	N int
}

func (f FixedString) Len() int { return f.N }
func (f FixedString) Decode(b []byte) string {
	end := f.N
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}
