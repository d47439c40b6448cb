package msigaddr

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/iov-one/msigaddr/errors"
)

// AccountIDLength is the length of all account identifiers.
const AccountIDLength = 32

// AccountID is the raw identifier of an account on chain, independent of
// the network specific text rendering.
type AccountID [AccountIDLength]byte

// NewAccountID returns an account identifier holding a copy of given bytes.
func NewAccountID(raw []byte) (AccountID, error) {
	var id AccountID
	if len(raw) != AccountIDLength {
		return id, errors.Wrapf(errors.ErrInput, "account id must be %d bytes, got %d", AccountIDLength, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// ParseAccountID decodes a hex encoded account identifier. The 0x prefix is
// optional.
func ParseAccountID(s string) (AccountID, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return AccountID{}, errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	return NewAccountID(raw)
}

// Compare returns an integer comparing two account identifiers
// lexicographically. The result will be 0 if a==b, -1 if a < b, and +1 if
// a > b.
func (a AccountID) Compare(b AccountID) int {
	return bytes.Compare(a[:], b[:])
}

// String returns the 0x prefixed hex representation.
func (a AccountID) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard array of numbers encoding.
func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountID) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	id, err := ParseAccountID(enc)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// SortedAccounts returns a copy of given identifiers ordered ascending by
// their byte representation. Duplicates are preserved.
func SortedAccounts(ids []AccountID) []AccountID {
	sorted := make([]AccountID, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	return sorted
}
