package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var multisignSigner string

// jsonToHexCommand builds a command that reads one JSON object and prints
// the hex produced by encode.
func jsonToHexCommand(use, short string, encode func(map[string]any) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [json | @file | -]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readJSONObject(cmd, args)
			if err != nil {
				return err
			}
			h, err := encode(obj)
			if err != nil {
				return err
			}
			return printLine(cmd, h)
		},
	}
}

var encodeCmd = jsonToHexCommand("encode",
	"Encode a JSON transaction or ledger object to hex",
	func(obj map[string]any) (string, error) { return appCodec.Encode(obj) })

var encodeForSigningCmd = jsonToHexCommand("encode-for-signing",
	"Encode the single signing data of a transaction",
	func(obj map[string]any) (string, error) { return appCodec.EncodeForSigning(obj) })

var encodeForMultisigningCmd = jsonToHexCommand("encode-for-multisigning",
	"Encode the signing data of one signer of a multi-signed transaction",
	func(obj map[string]any) (string, error) { return appCodec.EncodeForMultisigning(obj, multisignSigner) })

var encodeForSigningClaimCmd = jsonToHexCommand("encode-for-signing-claim",
	"Encode a payment channel claim {Channel, Amount} for signing",
	func(obj map[string]any) (string, error) { return appCodec.EncodeForSigningClaim(obj) })

var encodeForSigningBatchCmd = jsonToHexCommand("encode-for-signing-batch",
	"Encode batch flags and inner transaction IDs {flags, txIDs} for signing",
	func(obj map[string]any) (string, error) { return appCodec.EncodeForSigningBatch(obj) })

var decodeCmd = &cobra.Command{
	Use:   "decode [hex | @file | -]",
	Short: "Decode hex to a JSON transaction or ledger object",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := readHex(cmd, args)
		if err != nil {
			return err
		}
		obj, err := appCodec.Decode(h)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), obj)
	},
}

var txIDCmd = &cobra.Command{
	Use:   "tx-id [hex | json | @file | -]",
	Short: "Compute the ID of a transaction given as hex or JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readArg(cmd, args)
		if err != nil {
			return err
		}
		blob := strings.Trim(strings.TrimSpace(string(input)), `"`)
		if looksLikeJSON(input) {
			obj, err := parseJSONObject(input)
			if err != nil {
				return err
			}
			if blob, err = appCodec.Encode(obj); err != nil {
				return err
			}
		}
		id, err := appCodec.TransactionID(blob)
		if err != nil {
			return err
		}
		return printLine(cmd, id)
	},
}

func printLine(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

func init() {
	encodeForMultisigningCmd.Flags().StringVar(&multisignSigner, "signer", "", "classic address of the signer")
	_ = encodeForMultisigningCmd.MarkFlagRequired("signer")

	rootCmd.AddCommand(encodeCmd, decodeCmd, encodeForSigningCmd, encodeForMultisigningCmd,
		encodeForSigningClaimCmd, encodeForSigningBatchCmd, txIDCmd)
}
