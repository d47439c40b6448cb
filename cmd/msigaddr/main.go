package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/msigaddr"
	"github.com/iov-one/msigaddr/errors"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line with given arguments and returns the
// process exit code. Nothing is written to stdout unless the command
// succeeds.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{network: msigaddr.DefaultNetwork}
	cmd := newRootCmd(opts, stdout, stderr)
	cmd.SetArgs(args)

	if err := execute(cmd); err != nil {
		if opts.debug {
			fmt.Fprintf(stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(stderr, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}

func execute(cmd *cobra.Command) (err error) {
	defer errors.Recover(&err)
	return cmd.Execute()
}

// options are the flag values shared by all commands.
type options struct {
	network msigaddr.Network
	debug   bool
}

const (
	outputText = "text"
	outputJSON = "json"
)

func newRootCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	var (
		output string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "msigaddr [flags] THRESHOLD ADDRESS...",
		Short: "Compute the address of a multisig account",
		Long: `Compute the address of a multisig account.

A multisig account is derived from the set of its member accounts and the
number of signatures required to act on its behalf. Member order does not
matter. All member addresses must belong to the selected network and the
result is printed using that network address format.

The account of a multisig does not exist on chain until it is used. Knowing
its address beforehand allows to fund it or to reference it before any
member signs a transaction.
`,
		Example: `  msigaddr 2 HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F FoQJpPyadYccjavVdTWxpxU7rUEaYhfLCPwXgkfD6Zat9QP
  msigaddr --network polkadot 1 15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5 14E5nqKAp3oAJcmzgZhUD2RcptBeUBScxKHgJKU4HPNcKVf3`,
		Version: msigaddr.Version(),
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return errors.Field("Threshold", errors.ErrInput, "threshold is required")
			case 1:
				return errors.Field("Addresses", errors.ErrInput, "at least one address is required")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputJSON {
				return errors.Field("Output", errors.ErrInput, "%q is not one of %s, %s", output, outputText, outputJSON)
			}
			logger := newLogger(stderr, opts.debug)

			threshold, err := msigaddr.ParseThreshold(args[0])
			if err != nil {
				return errors.Field("Threshold", err, "")
			}
			members, err := decodeMembers(logger, opts.network, args[1:])
			if err != nil {
				return err
			}

			m := msigaddr.Multisig{Threshold: threshold, Members: members}
			if err := m.Validate(); err != nil {
				if strict {
					return err
				}
				logger.Info("multisig cannot be operated on chain", "reason", err.Error())
			}
			account := m.Account()
			logger.Debug("multisig account derived", "account", account, "threshold", threshold)

			if output == outputJSON {
				return writeJSON(stdout, opts.network, m, account)
			}
			_, err = fmt.Fprintln(stdout, opts.network.EncodeAddress(account))
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	pfl := cmd.PersistentFlags()
	pfl.Var(&opts.network, "network", "Network the addresses belong to, one of kusama, polkadot.")
	pfl.BoolVar(&opts.debug, "debug", false, "Write debug logs to stderr.")

	fl := cmd.Flags()
	fl.StringVar(&output, "output", outputText, "Output format, one of text, json.")
	fl.BoolVar(&strict, "strict", false, "Reject a threshold of 0 or greater than the number of members.")

	cmd.AddCommand(
		newThresholdsCmd(opts, stdout, stderr),
		newInspectCmd(opts, stdout, stderr),
	)
	return cmd
}

// newLogger returns a logger writing to given destination. Only info and
// error messages are written unless debug is enabled.
func newLogger(w io.Writer, debug bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(w)).
		With("module", "msigaddr")
	if debug {
		return log.NewFilter(logger, log.AllowDebug())
	}
	return log.NewFilter(logger, log.AllowInfo())
}

// decodeMembers decodes all member addresses, ensuring each belongs to
// given network.
func decodeMembers(logger log.Logger, network msigaddr.Network, addresses []string) ([]msigaddr.AccountID, error) {
	logger.Debug("decoding members", "network", network, "count", len(addresses))

	members := make([]msigaddr.AccountID, 0, len(addresses))
	for i, a := range addresses {
		id, err := network.DecodeAddress(a)
		if err != nil {
			return nil, errors.Field(fmt.Sprintf("Addresses.%d", i), err, "%q", a)
		}
		logger.Debug("member decoded", "address", a, "account", id)
		members = append(members, id)
	}
	return members, nil
}

type multisigJSON struct {
	Network   string             `json:"network"`
	Threshold uint16             `json:"threshold"`
	Members   []string           `json:"members"`
	AccountID msigaddr.AccountID `json:"account_id"`
	Address   string             `json:"address"`
}

func writeJSON(w io.Writer, network msigaddr.Network, m msigaddr.Multisig, account msigaddr.AccountID) error {
	sorted := msigaddr.SortedAccounts(m.Members)
	members := make([]string, len(sorted))
	for i, id := range sorted {
		members[i] = network.EncodeAddress(id)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	err := enc.Encode(multisigJSON{
		Network:   network.String(),
		Threshold: m.Threshold,
		Members:   members,
		AccountID: account,
		Address:   network.EncodeAddress(account),
	})
	return errors.Wrap(err, "cannot encode result")
}
