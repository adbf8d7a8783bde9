package cli

import (
	"github.com/spf13/cobra"

	addresscodec "github.com/LeJamon/xrplcodec/internal/codec/address-codec"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/crypto"
)

var seedKeyType string

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Encode and decode base58 addresses, public keys and seeds",
}

var addressEncodeCmd = &cobra.Command{
	Use:   "encode <account-id-hex>",
	Short: "Encode a 20 byte account ID as a classic address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := byteseq.DecodeHex(args[0])
		if err != nil {
			return err
		}
		addr, err := addresscodec.EncodeAccountIDToClassicAddress(id)
		if err != nil {
			return err
		}
		return printLine(cmd, addr)
	},
}

var addressDecodeCmd = &cobra.Command{
	Use:   "decode <address>",
	Short: "Decode a classic address to its account ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, id, err := addresscodec.DecodeClassicAddressToAccountID(args[0])
		if err != nil {
			return err
		}
		return printLine(cmd, byteseq.EncodeHex(id))
	},
}

var addressFromPubKeyCmd = &cobra.Command{
	Use:   "from-pubkey <public-key-hex>",
	Short: "Derive the classic address of a secp256k1 or Ed25519 public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := addresscodec.EncodeClassicAddressFromPublicKeyHex(args[0])
		if err != nil {
			return err
		}
		return printLine(cmd, addr)
	},
}

var addressDecodePublicKeyCmd = &cobra.Command{
	Use:   "decode-public-key <key>",
	Short: "Decode a base58 node or account public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := map[string]any{}
		key, err := addresscodec.DecodeNodePublicKey(args[0])
		if err == nil {
			nodeID := crypto.CalcNodeID(key)
			out["kind"] = "node"
			out["node_id"] = byteseq.EncodeHex(nodeID[:])
		} else {
			if key, err = addresscodec.DecodeAccountPublicKey(args[0]); err != nil {
				return err
			}
			accountID := crypto.CalcAccountID(key)
			address, err := addresscodec.EncodeAccountIDToClassicAddress(accountID[:])
			if err != nil {
				return err
			}
			out["kind"] = "account"
			out["account_id"] = byteseq.EncodeHex(accountID[:])
			out["address"] = address
		}
		out["public_key"] = byteseq.EncodeHex(key)
		out["key_type"] = crypto.PublicKeyType(key).String()
		return writeJSON(cmd.OutOrStdout(), out)
	},
}

var addressEncodeSeedCmd = &cobra.Command{
	Use:   "encode-seed <entropy-hex>",
	Short: "Encode 16 bytes of entropy as a seed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entropy, err := byteseq.DecodeHex(args[0])
		if err != nil {
			return err
		}
		keyType, err := crypto.KeyTypeFromString(seedKeyType)
		if err != nil {
			return err
		}
		seed, err := addresscodec.EncodeSeed(entropy, keyType)
		if err != nil {
			return err
		}
		return printLine(cmd, seed)
	},
}

var addressDecodeSeedCmd = &cobra.Command{
	Use:   "decode-seed <seed>",
	Short: "Decode a seed to its entropy and key type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entropy, keyType, err := addresscodec.DecodeSeed(args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"entropy":  byteseq.EncodeHex(entropy),
			"key_type": keyType.String(),
		})
	},
}

func init() {
	addressEncodeSeedCmd.Flags().StringVar(&seedKeyType, "key-type", crypto.KeyTypeSecp256k1.String(), "secp256k1 or ed25519")

	addressCmd.AddCommand(addressEncodeCmd, addressDecodeCmd, addressFromPubKeyCmd,
		addressDecodePublicKeyCmd, addressEncodeSeedCmd, addressDecodeSeedCmd)
	rootCmd.AddCommand(addressCmd)
}
