package msigaddr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iov-one/msigaddr/crypto/ss58"
	"github.com/iov-one/msigaddr/errors"
)

// Network is one of the supported network profiles. Each profile renders
// addresses with its own SS58 format.
type Network uint8

const (
	Polkadot Network = iota + 1
	Kusama
)

// DefaultNetwork is used when a network is not explicitly selected.
const DefaultNetwork = Kusama

type profile struct {
	name   string
	format ss58.Format
}

// profiles is the closed set of supported networks. Adding a network is
// a matter of extending this table.
var profiles = map[Network]profile{
	Polkadot: {name: "polkadot", format: ss58.PolkadotFormat},
	Kusama:   {name: "kusama", format: ss58.KusamaFormat},
}

// ParseNetwork returns the network profile of given name. Names are case
// sensitive.
func ParseNetwork(name string) (Network, error) {
	for n, p := range profiles {
		if p.name == name {
			return n, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrNetwork,
		"%q is not one of %s", name, strings.Join(Networks(), ", "))
}

// Networks returns the names of all supported networks in alphabetical
// order.
func Networks() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

// NetworkByFormat returns the network that is using given address format.
func NetworkByFormat(f ss58.Format) (Network, bool) {
	for n, p := range profiles {
		if p.format == f {
			return n, true
		}
	}
	return 0, false
}

func (n Network) String() string {
	if p, ok := profiles[n]; ok {
		return p.name
	}
	return fmt.Sprintf("Network(%d)", n)
}

// Validate returns an error if this is not one of the supported networks.
func (n Network) Validate() error {
	if _, ok := profiles[n]; !ok {
		return errors.Wrapf(errors.ErrNetwork, "%d", n)
	}
	return nil
}

// Format returns the SS58 format used by this network. It panics when
// called on an unsupported network value.
func (n Network) Format() ss58.Format {
	p, ok := profiles[n]
	if !ok {
		panic(fmt.Sprintf("unsupported network: %d", n))
	}
	return p.format
}

// Set implements pflag.Value interface.
func (n *Network) Set(name string) error {
	parsed, err := ParseNetwork(name)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Type implements pflag.Value interface.
func (n *Network) Type() string {
	return "network"
}

// DecodeAddress decodes an SS58 encoded address and ensures it belongs to
// this network.
func (n Network) DecodeAddress(s string) (AccountID, error) {
	addr, err := ParseAddress(s)
	if err != nil {
		return AccountID{}, err
	}
	if want := n.Format(); addr.Format != want {
		got := fmt.Sprintf("format %d", addr.Format)
		if other, ok := addr.Network(); ok {
			got = other.String()
		}
		return AccountID{}, errors.Wrapf(errors.ErrNetworkMismatch,
			"%s address given, please make sure to only specify %s addresses", got, n)
	}
	return addr.Account, nil
}

// EncodeAddress returns the SS58 representation of given account for this
// network.
func (n Network) EncodeAddress(id AccountID) string {
	return Address{Account: id, Format: n.Format()}.String()
}
