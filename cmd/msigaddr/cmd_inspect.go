package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iov-one/msigaddr"
	"github.com/iov-one/msigaddr/errors"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	var header bool

	cmd := &cobra.Command{
		Use:   "inspect [flags] ADDRESS...",
		Short: "Print the format, network and account id of addresses",
		Long: `Print the format, network and account id of addresses.

Addresses of any format are accepted. The network column is "unknown" for
formats that do not belong to a supported network. Use this command to
find out which network an address was created for.
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.Field("Addresses", errors.ErrInput, "at least one address is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.debug)

			addrs := make([]msigaddr.Address, 0, len(args))
			for i, a := range args {
				addr, err := msigaddr.ParseAddress(a)
				if err != nil {
					return errors.Field(fmt.Sprintf("Addresses.%d", i), err, "%q", a)
				}
				logger.Debug("address decoded", "address", a, "format", uint16(addr.Format))
				addrs = append(addrs, addr)
			}
			return printAddresses(stdout, args, addrs, header)
		},
	}
	cmd.Flags().BoolVar(&header, "header", true, "Display header")
	return cmd
}

func printAddresses(out io.Writer, raw []string, addrs []msigaddr.Address, header bool) error {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)

	if header {
		fmt.Fprintln(w, "address\tformat\tnetwork\taccount id")
	}
	for i, a := range addrs {
		network := "unknown"
		if n, ok := a.Network(); ok {
			network = n.String()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", raw[i], a.Format, network, hex.EncodeToString(a.Account[:]))
	}
	return errors.Wrap(w.Flush(), "cannot write table")
}
