// Package binarycodec converts XRPL transactions and ledger objects between
// their JSON form and the canonical binary form, and builds the byte
// strings that get signed or hashed.
package binarycodec

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	addresscodec "github.com/LeJamon/xrplcodec/internal/codec/address-codec"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types"
	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
	"github.com/LeJamon/xrplcodec/internal/crypto"
)

var (
	// ErrMissingClaimField is returned when a claim lacks Channel or Amount.
	ErrMissingClaimField = codecerr.New(codecerr.KindShapeMismatch, "claim requires Channel and Amount")
	// ErrInvalidClaimAmount is returned when a claim amount is not a whole number of drops.
	ErrInvalidClaimAmount = codecerr.New(codecerr.KindAmountOutOfRange, "claim amount must be a whole number of drops")
	// ErrMissingBatchField is returned when a batch lacks flags or txIDs.
	ErrMissingBatchField = codecerr.New(codecerr.KindShapeMismatch, "batch requires flags and txIDs")
)

const (
	signingPubKeyField = "SigningPubKey"
	claimChannelField  = "Channel"
	claimAmountField   = "Amount"
	batchFlagsField    = "flags"
	batchTxIDsField    = "txIDs"
)

// Codec encodes and decodes against one set of definitions. The zero value
// uses the embedded definitions. A Codec holds no mutable state and is safe
// for concurrent use.
type Codec struct {
	defs *definitions.Definitions
}

// NewCodec returns a codec over defs.
func NewCodec(defs *definitions.Definitions) *Codec {
	return &Codec{defs: defs}
}

func (c *Codec) definitions() *definitions.Definitions {
	if c.defs == nil {
		return definitions.Get()
	}
	return c.defs
}

var std = &Codec{}

// Encode serializes a JSON object to uppercase hex.
func Encode(json map[string]any) (string, error) { return std.Encode(json) }

// Decode parses hex of either case into a JSON object.
func Decode(hexEncoded string) (map[string]any, error) { return std.Decode(hexEncoded) }

// EncodeForSigning encodes the signing fields of a transaction behind the
// single signing prefix.
func EncodeForSigning(json map[string]any) (string, error) { return std.EncodeForSigning(json) }

// EncodeForMultisigning encodes the signing data of one signer of a
// multi-signed transaction.
func EncodeForMultisigning(json map[string]any, signerAddress string) (string, error) {
	return std.EncodeForMultisigning(json, signerAddress)
}

// EncodeForSigningClaim encodes a payment channel claim for signing.
func EncodeForSigningClaim(json map[string]any) (string, error) {
	return std.EncodeForSigningClaim(json)
}

// EncodeForSigningBatch encodes the flags and inner transaction IDs of a
// batch for signing.
func EncodeForSigningBatch(json map[string]any) (string, error) {
	return std.EncodeForSigningBatch(json)
}

// TransactionID returns the hash identifying a serialized transaction.
func TransactionID(txBlobHex string) (string, error) { return std.TransactionID(txBlobHex) }

func (c *Codec) serialize(json map[string]any) ([]byte, error) {
	s := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(c.definitions()))
	return types.NewSTObject(s).FromJSON(json)
}

// Encode serializes a JSON object to uppercase hex.
func (c *Codec) Encode(json map[string]any) (string, error) {
	b, err := c.serialize(json)
	if err != nil {
		return "", err
	}
	return byteseq.EncodeHex(b), nil
}

// Decode parses hex of either case into a JSON object. The whole input
// must be consumed by one top level object.
func (c *Codec) Decode(hexEncoded string) (map[string]any, error) {
	data, err := byteseq.DecodeHex(hexEncoded)
	if err != nil {
		return nil, err
	}
	defs := c.definitions()
	s := serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
	v, err := types.NewSTObject(s).ToJSON(serdes.NewBinaryParser(data, defs))
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// signingFields returns a shallow copy of json without the top level fields
// that are excluded from signing, such as TxnSignature and Signers.
func (c *Codec) signingFields(json map[string]any) map[string]any {
	defs := c.definitions()
	out := make(map[string]any, len(json))
	for k, v := range json {
		if fi, err := defs.GetFieldInstanceByFieldName(k); err == nil && !fi.IsSigningField {
			continue
		}
		out[k] = v
	}
	return out
}

// EncodeForSigning encodes the signing fields of a transaction behind the
// single signing prefix. json is not modified.
func (c *Codec) EncodeForSigning(json map[string]any) (string, error) {
	b, err := c.serialize(c.signingFields(json))
	if err != nil {
		return "", err
	}
	return byteseq.EncodeHex(crypto.PrependHashPrefix(crypto.HashPrefixTxSign, b)), nil
}

// EncodeForMultisigning encodes the signing fields behind the multi-signing
// prefix, with an empty SigningPubKey, followed by the signer's account ID.
func (c *Codec) EncodeForMultisigning(json map[string]any, signerAddress string) (string, error) {
	_, accountID, err := addresscodec.DecodeClassicAddressToAccountID(signerAddress)
	if err != nil {
		return "", fmt.Errorf("signer %q: %w", signerAddress, err)
	}

	fields := c.signingFields(json)
	fields[signingPubKeyField] = ""
	b, err := c.serialize(fields)
	if err != nil {
		return "", err
	}

	var id [crypto.AccountIDSize]byte
	copy(id[:], accountID)
	data := crypto.FinishMultiSigningData(crypto.PrependHashPrefix(crypto.HashPrefixTxMultiSign, b), id)
	return byteseq.EncodeHex(data), nil
}

// EncodeForSigningClaim encodes a claim: the 32 byte channel ID followed by
// the amount in drops as a big-endian uint64.
func (c *Codec) EncodeForSigningClaim(json map[string]any) (string, error) {
	channel, ok := json[claimChannelField]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMissingClaimField, claimChannelField)
	}
	amount, ok := json[claimAmountField]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMissingClaimField, claimAmountField)
	}

	channelID, err := types.NewHash256().FromJSON(channel)
	if err != nil {
		return "", fmt.Errorf("%s: %w", claimChannelField, err)
	}
	drops, err := claimDrops(amount)
	if err != nil {
		return "", err
	}

	data := crypto.PrependHashPrefix(crypto.HashPrefixPaymentChannelClaim, channelID)
	data = binary.BigEndian.AppendUint64(data, drops)
	return byteseq.EncodeHex(data), nil
}

func claimDrops(amount any) (uint64, error) {
	var text string
	switch v := amount.(type) {
	case string:
		text = v
	case json.Number:
		text = v.String()
	case uint64:
		return v, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidClaimAmount, v)
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidClaimAmount, amount)
	}
	drops, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClaimAmount, text)
	}
	return drops, nil
}

// EncodeForSigningBatch encodes flags, the number of inner transactions and
// each inner transaction ID.
func (c *Codec) EncodeForSigningBatch(json map[string]any) (string, error) {
	flags, ok := json[batchFlagsField]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMissingBatchField, batchFlagsField)
	}
	rawIDs, ok := json[batchTxIDsField]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMissingBatchField, batchTxIDsField)
	}

	var ids []any
	switch v := rawIDs.(type) {
	case []string:
		for _, id := range v {
			ids = append(ids, id)
		}
	case []any:
		ids = v
	default:
		return "", fmt.Errorf("%w: %s got %T", ErrMissingBatchField, batchTxIDsField, rawIDs)
	}

	flagBytes, err := (&types.UInt32{}).FromJSON(flags)
	if err != nil {
		return "", fmt.Errorf("%s: %w", batchFlagsField, err)
	}
	data := crypto.PrependHashPrefix(crypto.HashPrefixBatch, flagBytes)
	data = binary.BigEndian.AppendUint32(data, uint32(len(ids)))
	for i, id := range ids {
		b, err := types.NewHash256().FromJSON(id)
		if err != nil {
			return "", fmt.Errorf("%s[%d]: %w", batchTxIDsField, i, err)
		}
		data = append(data, b...)
	}
	return byteseq.EncodeHex(data), nil
}

// TransactionID returns SHA-512Half of the transaction ID prefix followed by
// the serialized transaction, as uppercase hex.
func (c *Codec) TransactionID(txBlobHex string) (string, error) {
	blob, err := byteseq.DecodeHex(txBlobHex)
	if err != nil {
		return "", err
	}
	id := crypto.Sha512Half(crypto.PrependHashPrefix(crypto.HashPrefixTransactionID, blob))
	return byteseq.EncodeHex(id[:]), nil
}
