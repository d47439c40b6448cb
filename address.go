package msigaddr

import (
	"fmt"

	"github.com/iov-one/msigaddr/crypto/ss58"
	"github.com/iov-one/msigaddr/errors"
)

// Address is an account identifier together with the SS58 format it is
// rendered with.
type Address struct {
	Account AccountID
	Format  ss58.Format
}

// ParseAddress decodes an SS58 encoded account address. Only addresses
// carrying a 32 bytes account identifier are accepted.
func ParseAddress(s string) (Address, error) {
	format, payload, err := ss58.Decode(s)
	if err != nil {
		return Address{}, err
	}
	if len(payload) != AccountIDLength {
		return Address{}, errors.Wrapf(errors.ErrAddress,
			"payload is %d bytes, account id must be %d", len(payload), AccountIDLength)
	}
	var addr Address
	copy(addr.Account[:], payload)
	addr.Format = format
	return addr, nil
}

// String returns the SS58 representation.
func (a Address) String() string {
	s, err := ss58.Encode(a.Format, a.Account[:])
	if err != nil {
		return fmt.Sprintf("Invalid Address: %s", err)
	}
	return s
}

// Network returns the profile that this address format belongs to, if any.
func (a Address) Network() (Network, bool) {
	return NetworkByFormat(a.Format)
}
