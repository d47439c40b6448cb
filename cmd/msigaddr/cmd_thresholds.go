package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/iov-one/msigaddr"
	"github.com/iov-one/msigaddr/errors"
	"github.com/spf13/cobra"
)

func newThresholdsCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	var header bool

	cmd := &cobra.Command{
		Use:   "thresholds [flags] ADDRESS...",
		Short: "Print multisig addresses for every possible threshold",
		Long: `Print multisig addresses for every possible threshold.

For given member set, a multisig account address is computed for each
threshold value from 1 up to the number of members. Addresses are
deterministic and can be precomputed. This knowledge is helpful when
choosing a threshold or when referencing an account before it exists.
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.Field("Addresses", errors.ErrInput, "at least one address is required")
			}
			if len(args) > math.MaxUint16 {
				return errors.Field("Addresses", errors.ErrInput, "at most %d addresses are allowed", math.MaxUint16)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.debug)
			members, err := decodeMembers(logger, opts.network, args)
			if err != nil {
				return err
			}
			return printThresholds(stdout, opts.network, members, header)
		},
	}
	cmd.Flags().BoolVar(&header, "header", true, "Display header")
	return cmd
}

// printThresholds writes a table of multisig addresses, one for each
// threshold from 1 to the number of members.
func printThresholds(out io.Writer, network msigaddr.Network, members []msigaddr.AccountID, header bool) error {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)

	if header {
		fmt.Fprintln(w, "threshold\taddress")
	}
	for t := 1; t <= len(members); t++ {
		id := msigaddr.MultisigAccount(members, uint16(t))
		fmt.Fprintf(w, "%d\t%s\n", t, network.EncodeAddress(id))
	}
	return errors.Wrap(w.Flush(), "cannot write table")
}
