package msigaddr

import (
	"strconv"

	"github.com/iov-one/msigaddr/errors"
	"github.com/iov-one/msigaddr/scale"
	"golang.org/x/crypto/blake2b"
)

// multisigDomain separates multisig account derivation from any other use
// of the hash. It must stay byte for byte the same, otherwise every derived
// account changes.
const multisigDomain = "modlpy/utilisuba"

// Multisig describes a multisignature account: a set of members and the
// number of signatures required to act on behalf of the account.
type Multisig struct {
	Threshold uint16
	Members   []AccountID
}

// Account returns the deterministic identifier of this multisig account.
func (m Multisig) Account() AccountID {
	return MultisigAccount(m.Members, m.Threshold)
}

// Validate returns an error if this multisig account can never be operated
// on chain. Derivation does not require a valid multisig.
func (m Multisig) Validate() error {
	if len(m.Members) == 0 {
		return errors.Wrap(errors.ErrInput, "no members")
	}
	sorted := SortedAccounts(m.Members)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return errors.Wrapf(errors.ErrInput, "duplicated member %s", sorted[i])
		}
	}
	if m.Threshold == 0 {
		return errors.Wrap(errors.ErrThreshold, "threshold must be greater than 0")
	}
	if int(m.Threshold) > len(m.Members) {
		return errors.Wrapf(errors.ErrThreshold,
			"threshold %d is greater than the number of members %d", m.Threshold, len(m.Members))
	}
	return nil
}

// MultisigAccount derives the account identifier of a multisig account
// from its members and threshold. Member order does not matter, members are
// sorted before hashing. Duplicates are not removed.
//
// The identifier is the blake2b-256 digest of the SCALE encoded tuple
//
//	("modlpy/utilisuba", sorted members, threshold)
//
// where the domain is 16 raw bytes, members are a compact length prefixed
// sequence of 32 byte identifiers and threshold is a little endian uint16.
func MultisigAccount(members []AccountID, threshold uint16) AccountID {
	sorted := SortedAccounts(members)

	size := len(multisigDomain) + scale.CompactLen(uint64(len(sorted))) + len(sorted)*AccountIDLength + 2
	data := make([]byte, 0, size)
	data = append(data, multisigDomain...)
	data = scale.AppendCompact(data, uint64(len(sorted)))
	for _, m := range sorted {
		data = append(data, m[:]...)
	}
	data = scale.AppendUint16(data, threshold)

	return AccountID(blake2b.Sum256(data))
}

// ParseThreshold parses a decimal threshold value.
func ParseThreshold(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrThreshold, "%q is not an unsigned 16 bit integer", s)
	}
	return uint16(v), nil
}
