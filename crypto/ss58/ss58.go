/*
Package ss58 implements the SS58 address format used by Substrate based
networks.

An address is the base58 encoding of

	prefix || payload || checksum

where prefix is a one or two byte encoding of the address format (network
identifier), payload is the raw public key or account identifier and
checksum is the beginning of the blake2b-512 digest of the "SS58PRE" literal
followed by prefix and payload.
*/
package ss58

import (
	"bytes"

	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/msigaddr/errors"
	"golang.org/x/crypto/blake2b"
)

// Format is the address type, identifying the network an address belongs
// to.
type Format uint16

const (
	// MaxFormat is the biggest format value that can be represented by
	// the two byte prefix.
	MaxFormat Format = 1<<14 - 1

	// Well known formats.
	PolkadotFormat  Format = 0
	KusamaFormat    Format = 2
	SubstrateFormat Format = 42
)

// Validate returns an error if the format cannot be encoded.
func (f Format) Validate() error {
	if f > MaxFormat {
		return errors.Wrapf(errors.ErrInput, "format %d is greater than %d", f, MaxFormat)
	}
	return nil
}

// checksumPrefix is prepended to the hashed data when computing the checksum.
var checksumPrefix = []byte("SS58PRE")

// checksumLengths maps the length of payload and checksum combined, which is
// what remains after the prefix is removed, to the checksum length. Only
// those layouts are valid.
var checksumLengths = map[int]int{
	1 + 1:  1,
	2 + 1:  1,
	4 + 1:  1,
	8 + 1:  1,
	32 + 2: 2,
	33 + 2: 2,
}

// Decode converts given SS58 encoded representation into the address
// format and the raw payload.
func Decode(raw string) (Format, []byte, error) {
	// base58.Decode does not report errors. An invalid character
	// results in an empty output.
	data := base58.Decode(raw)
	if len(data) == 0 {
		return 0, nil, errors.Wrapf(errors.ErrAddress, "%q is not base58 encoded", raw)
	}

	format, prefixLen, err := decodePrefix(data)
	if err != nil {
		return 0, nil, err
	}

	checksumLen, ok := checksumLengths[len(data)-prefixLen]
	if !ok {
		return 0, nil, errors.Wrapf(errors.ErrAddress, "unexpected length %d", len(data))
	}

	body := data[:len(data)-checksumLen]
	got := data[len(data)-checksumLen:]
	if want := checksum(body)[:checksumLen]; !bytes.Equal(want, got) {
		return 0, nil, errors.Wrapf(errors.ErrChecksum, "want %x, got %x", want, got)
	}

	payload := make([]byte, len(body)-prefixLen)
	copy(payload, body[prefixLen:])
	return format, payload, nil
}

// Encode converts given format and payload into the SS58 encoded
// representation. Payload length must be one of 1, 2, 4, 8, 32 or 33 bytes.
func Encode(format Format, payload []byte) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}
	checksumLen := checksumLenFor(len(payload))
	if _, ok := checksumLengths[len(payload)+checksumLen]; !ok {
		return "", errors.Wrapf(errors.ErrInput, "unsupported payload length %d", len(payload))
	}

	prefix := encodePrefix(format)
	data := make([]byte, 0, len(prefix)+len(payload)+checksumLen)
	data = append(data, prefix...)
	data = append(data, payload...)
	data = append(data, checksum(data)[:checksumLen]...)
	return base58.Encode(data), nil
}

// checksumLenFor returns the checksum length used together with a payload of
// given size.
func checksumLenFor(payloadLen int) int {
	if payloadLen > 8 {
		return 2
	}
	return 1
}

func checksum(data []byte) []byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		// Only possible with an invalid key.
		panic(err)
	}
	h.Write(checksumPrefix)
	h.Write(data)
	return h.Sum(nil)
}

// encodePrefix returns the one or two byte representation of the format.
//
// Formats up to 63 are a single byte. Bigger formats use two bytes, marked
// by 0b01 in the two most significant bits of the first byte:
//
//	first  = 0b01 | format[7:2]
//	second = format[1:0] | format[13:8]
func encodePrefix(f Format) []byte {
	if f < 64 {
		return []byte{byte(f)}
	}
	first := byte((f&0b1111_1100)>>2) | 0b0100_0000
	second := byte(f>>8) | byte(f&0b0000_0011)<<6
	return []byte{first, second}
}

// decodePrefix reads the format from the beginning of data and returns it
// together with the number of bytes it occupied.
func decodePrefix(data []byte) (Format, int, error) {
	switch b := data[0]; {
	case b < 64:
		return Format(b), 1, nil
	case b < 128:
		if len(data) < 2 {
			return 0, 0, errors.Wrap(errors.ErrAddress, "truncated prefix")
		}
		lower := data[0]<<2 | data[1]>>6
		upper := data[1] & 0b0011_1111
		return Format(lower) | Format(upper)<<8, 2, nil
	default:
		return 0, 0, errors.Wrapf(errors.ErrAddress, "invalid prefix byte %#x", b)
	}
}
