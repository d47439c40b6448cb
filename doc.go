/*

Package msigaddr computes the address of a Substrate multisig account
offline, from the addresses of its members and the signature threshold.

Addresses are SS58 encoded (see the crypto/ss58 package) and always belong
to one of the supported network profiles, Polkadot or Kusama. A multisig
account identifier is the blake2b-256 digest of a domain separated, SCALE
encoded tuple of the sorted members and the threshold. It does not depend on
the order in which members are given.

	members := make([]msigaddr.AccountID, 0, len(addresses))
	for _, a := range addresses {
		id, err := msigaddr.Kusama.DecodeAddress(a)
		if err != nil {
			return err
		}
		members = append(members, id)
	}
	account := msigaddr.MultisigAccount(members, 2)
	fmt.Println(msigaddr.Kusama.EncodeAddress(account))

*/

package msigaddr
