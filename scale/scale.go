/*
Package scale implements the subset of the SCALE codec that is needed to build
hash input compatible with Substrate runtimes: compact integers (used as the
length prefix of sequences) and fixed width little endian integers.

Values are appended to a byte slice, in the style of strconv.AppendInt, so
that callers can build a complete message in a single buffer.
*/
package scale

import (
	"encoding/binary"
	"math/bits"
)

const (
	maxSingleByte = 1<<6 - 1
	maxTwoByte    = 1<<14 - 1
	maxFourByte   = 1<<30 - 1
)

// AppendCompact appends the compact encoding of v to dst.
//
// The two least significant bits of the first byte select the mode:
//   0b00  single byte, values up to 2^6-1
//   0b01  two bytes, values up to 2^14-1
//   0b10  four bytes, values up to 2^30-1
//   0b11  big integer, the upper six bits hold the number of following
//         bytes minus four
// All modes are little endian.
func AppendCompact(dst []byte, v uint64) []byte {
	switch {
	case v <= maxSingleByte:
		return append(dst, byte(v<<2))
	case v <= maxTwoByte:
		return AppendUint16(dst, uint16(v<<2)|0b01)
	case v <= maxFourByte:
		return AppendUint32(dst, uint32(v<<2)|0b10)
	}

	n := (bits.Len64(v) + 7) / 8
	dst = append(dst, byte(n-4)<<2|0b11)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v>>(8*uint(i))))
	}
	return dst
}

// CompactLen returns the number of bytes AppendCompact writes for v.
func CompactLen(v uint64) int {
	switch {
	case v <= maxSingleByte:
		return 1
	case v <= maxTwoByte:
		return 2
	case v <= maxFourByte:
		return 4
	}
	return 1 + (bits.Len64(v)+7)/8
}

// AppendUint16 appends v encoded as two little endian bytes.
func AppendUint16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// AppendUint32 appends v encoded as four little endian bytes.
func AppendUint32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}
