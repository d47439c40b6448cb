package msigtest

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/msigaddr"
	"github.com/iov-one/msigaddr/crypto/ss58"
	"golang.org/x/crypto/blake2b"
)

// Public keys of the well known development accounts. Substrate uses the
// public key as the account identifier, so these are valid account ids on
// every network.
var (
	Alice   = mustAccount("d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	Bob     = mustAccount("8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48")
	Charlie = mustAccount("90b5ab205c6974c9ea841be688864633dc9ca8a357843eeacf2314649965fe22")
	Dave    = mustAccount("306721211d5404bd9da88e0204360a1a9ab8b87c66c1bc2fcdd37f3c2222cc20")
	Eve     = mustAccount("e659a7a1628cdd93febc04a4e0646ea20e9f5f0ce097d9a05290d4a9e054df4e")
)

func mustAccount(hexID string) msigaddr.AccountID {
	id, err := msigaddr.ParseAccountID(hexID)
	if err != nil {
		panic(err)
	}
	return id
}

// SequenceAccount returns a deterministic account identifier for given
// sequence number. Different numbers produce different identifiers.
func SequenceAccount(i uint64) msigaddr.AccountID {
	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], i)
	return msigaddr.AccountID(blake2b.Sum256(seq[:]))
}

// SequenceAccounts returns n consecutive sequence accounts, starting with
// the first one.
func SequenceAccounts(n int) []msigaddr.AccountID {
	ids := make([]msigaddr.AccountID, n)
	for i := range ids {
		ids[i] = SequenceAccount(uint64(i + 1))
	}
	return ids
}

// EncodeAddress returns the SS58 representation of given account, failing
// the test if it cannot be encoded.
func EncodeAddress(t testing.TB, id msigaddr.AccountID, format ss58.Format) string {
	t.Helper()

	enc, err := ss58.Encode(format, id[:])
	if err != nil {
		t.Fatalf("cannot encode %s with format %d: %s", id, format, err)
	}
	return enc
}

// Reverse returns a copy of given identifiers in reversed order.
func Reverse(ids []msigaddr.AccountID) []msigaddr.AccountID {
	res := make([]msigaddr.AccountID, len(ids))
	for i, id := range ids {
		res[len(ids)-1-i] = id
	}
	return res
}
