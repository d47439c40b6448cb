package msigaddr_test

import (
	"math/rand"
	"testing"

	"github.com/iov-one/msigaddr"
	"github.com/iov-one/msigaddr/crypto/ss58"
	"github.com/iov-one/msigaddr/errors"
	"github.com/iov-one/msigaddr/msigtest"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultisigAccount(t *testing.T) {
	cases := map[string]struct {
		members   []msigaddr.AccountID
		threshold uint16
		format    ss58.Format
		want      string
	}{
		"alice, bob and charlie, 2 of 3": {
			members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob, msigtest.Charlie},
			threshold: 2,
			format:    ss58.SubstrateFormat,
			want:      "5DjYJStmdZ2rcqXbXGX7TW85JsrW6uG4y9MUcLq2BoPMpRA7",
		},
		"alice, bob and charlie on kusama": {
			members:   []msigaddr.AccountID{msigtest.Charlie, msigtest.Alice, msigtest.Bob},
			threshold: 2,
			format:    ss58.KusamaFormat,
			want:      "EF9xmEeFv3nNVM3HyLAMTV5TU8jua5FRXCE116yfbbrZbCL",
		},
		"alice, bob and charlie on polkadot": {
			members:   []msigaddr.AccountID{msigtest.Bob, msigtest.Charlie, msigtest.Alice},
			threshold: 2,
			format:    ss58.PolkadotFormat,
			want:      "12fqSn9qVLJL4NY7Uua7bexEAVr9oCpD3e5xmdpNjtQszzBt",
		},
		"alice and bob, 2 of 2": {
			members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			threshold: 2,
			format:    ss58.KusamaFormat,
			want:      "FZ29umykw5WDCAABs2BFzyztRn3BeJEUhqtbCFfKGZhS2kc",
		},
		"alice and bob, 1 of 2": {
			members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			threshold: 1,
			format:    ss58.KusamaFormat,
			want:      "EJRba6PvGwqq3kxwMSrgba7av3rWnKcD3fBRPGRunRLv4Q7",
		},
		"threshold greater than the member count": {
			members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			threshold: 3,
			format:    ss58.KusamaFormat,
			want:      "GxgbqsNoXCXnt35BW4LRxZga7gFKjtT5KHZG4fA36Ghbf6e",
		},
		"biggest threshold": {
			members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			threshold: 65535,
			format:    ss58.KusamaFormat,
			want:      "DVPvXirHvuUyofeCmwRFZoAzARqw6t6uonZFUj88p1Creps",
		},
		"zero threshold": {
			members:   []msigaddr.AccountID{msigtest.Alice},
			threshold: 0,
			format:    ss58.KusamaFormat,
			want:      "DrBSJqULwVDor69iGT3mLLap5LjmBeZXJEd51dfq5pJfnpc",
		},
		"duplicated members are not removed": {
			members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Alice},
			threshold: 1,
			format:    ss58.KusamaFormat,
			want:      "FDzXqE2SYtWqMSGgDjgo44vX62FNChiqM5NWVdKQMSbSDLf",
		},
		"member count using two byte length prefix": {
			members:   msigtest.SequenceAccounts(64),
			threshold: 33,
			format:    ss58.KusamaFormat,
			want:      "Ciy92zMtJFEoLGfHvYNgfKqsqs9yjDMzEeqv2ESii1Rh9C1",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			id := msigaddr.MultisigAccount(tc.members, tc.threshold)
			assert.Equal(t, tc.want, msigtest.EncodeAddress(t, id, tc.format))

			m := msigaddr.Multisig{Threshold: tc.threshold, Members: tc.members}
			assert.Equal(t, id, m.Account())
		})
	}
}

func TestMultisigAccountRawDigest(t *testing.T) {
	id := msigaddr.MultisigAccount([]msigaddr.AccountID{msigtest.Alice, msigtest.Bob}, 2)
	want, err := msigaddr.ParseAccountID("0x83b70134afe83e035d51b9b6543bae58fc4ad7495df986b619e71b2581bf6ec5")
	require.NoError(t, err)
	assert.Equal(t, want, id)

	empty := msigaddr.MultisigAccount(nil, 0)
	want, err = msigaddr.ParseAccountID("1acd2d9aa32bc21fb3f84031f1e61b7c382ca2b244f7d0a2f32c4187904f9fae")
	require.NoError(t, err)
	assert.Equal(t, want, empty)
}

func TestMultisigAccountOrderIndependence(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	Convey("Given a set of members", t, func() {
		members := msigtest.SequenceAccounts(7)
		original := append([]msigaddr.AccountID(nil), members...)
		want := msigaddr.MultisigAccount(members, 4)

		Convey("input is not modified", func() {
			So(members, ShouldResemble, original)
		})

		Convey("reversed order derives the same account", func() {
			So(msigaddr.MultisigAccount(msigtest.Reverse(members), 4), ShouldResemble, want)
		})

		Convey("any permutation derives the same account", func() {
			for i := 0; i < 50; i++ {
				shuffled := append([]msigaddr.AccountID(nil), members...)
				rnd.Shuffle(len(shuffled), func(a, b int) {
					shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
				})
				So(msigaddr.MultisigAccount(shuffled, 4), ShouldResemble, want)
			}
		})

		Convey("a different member set derives a different account", func() {
			other := append([]msigaddr.AccountID{msigtest.SequenceAccount(100)}, members[1:]...)
			So(msigaddr.MultisigAccount(other, 4), ShouldNotResemble, want)
		})
	})
}

func TestMultisigAccountThresholdSensitivity(t *testing.T) {
	members := []msigaddr.AccountID{msigtest.Alice, msigtest.Bob, msigtest.Charlie, msigtest.Dave, msigtest.Eve}

	seen := make(map[msigaddr.AccountID]uint16)
	for _, threshold := range []uint16{0, 1, 2, 3, 4, 5, 6, 255, 256, 1000, 65535} {
		id := msigaddr.MultisigAccount(members, threshold)
		if prev, ok := seen[id]; ok {
			t.Fatalf("threshold %d and %d derive the same account %s", prev, threshold, id)
		}
		seen[id] = threshold
	}
}

func TestMultisigValidate(t *testing.T) {
	cases := map[string]struct {
		multisig msigaddr.Multisig
		wantErr  *errors.Error
	}{
		"valid": {
			multisig: msigaddr.Multisig{
				Threshold: 2,
				Members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob, msigtest.Charlie},
			},
			wantErr: nil,
		},
		"threshold equal to the member count": {
			multisig: msigaddr.Multisig{
				Threshold: 2,
				Members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			},
			wantErr: nil,
		},
		"no members": {
			multisig: msigaddr.Multisig{Threshold: 1},
			wantErr:  errors.ErrInput,
		},
		"zero threshold": {
			multisig: msigaddr.Multisig{
				Threshold: 0,
				Members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			},
			wantErr: errors.ErrThreshold,
		},
		"threshold greater than the member count": {
			multisig: msigaddr.Multisig{
				Threshold: 3,
				Members:   []msigaddr.AccountID{msigtest.Alice, msigtest.Bob},
			},
			wantErr: errors.ErrThreshold,
		},
		"duplicated member": {
			multisig: msigaddr.Multisig{
				Threshold: 1,
				Members:   []msigaddr.AccountID{msigtest.Bob, msigtest.Alice, msigtest.Bob},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.multisig.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestParseThreshold(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    uint16
		wantErr *errors.Error
	}{
		"zero":            {raw: "0", want: 0},
		"small":           {raw: "2", want: 2},
		"biggest":         {raw: "65535", want: 65535},
		"overflow":        {raw: "65536", wantErr: errors.ErrThreshold},
		"negative":        {raw: "-1", wantErr: errors.ErrThreshold},
		"not a number":    {raw: "two", wantErr: errors.ErrThreshold},
		"empty":           {raw: "", wantErr: errors.ErrThreshold},
		"leading plus":    {raw: "+2", wantErr: errors.ErrThreshold},
		"hex is rejected": {raw: "0x2", wantErr: errors.ErrThreshold},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := msigaddr.ParseThreshold(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
