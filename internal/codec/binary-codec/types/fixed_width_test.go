package types

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/testutil"
	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

func TestUIntEncoding(t *testing.T) {
	tests := []struct {
		name        string
		codec       SerializedType
		input       any
		expectedHex string
	}{
		{"UInt8 int", &UInt8{}, 25, "19"},
		{"UInt8 float64", &UInt8{}, float64(255), "ff"},
		{"UInt16 int", &UInt16{}, 30874, "789a"},
		{"UInt16 json.Number", &UInt16{}, json.Number("65535"), "ffff"},
		{"UInt32 uint32", &UInt32{}, uint32(524288), "00080000"},
		{"UInt32 hex", &UInt32{}, "80000", "00080000"},
		{"UInt32 int64", &UInt32{}, int64(4294967295), "ffffffff"},
		{"UInt64 hex", &UInt64{}, "0000018446744073", "0000018446744073"},
		{"UInt64 short hex", &UInt64{}, "a", "000000000000000a"},
		{"UInt64 uint64", &UInt64{}, uint64(1) << 63, "8000000000000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.codec.FromJSON(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHex, hex.EncodeToString(b))
		})
	}
}

func TestUIntEncodingErrors(t *testing.T) {
	tests := []struct {
		name  string
		codec SerializedType
		input any
	}{
		{"UInt8 overflow", &UInt8{}, 256},
		{"UInt8 negative", &UInt8{}, -1},
		{"UInt8 fraction", &UInt8{}, 1.5},
		{"UInt8 string", &UInt8{}, "1"},
		{"UInt16 overflow", &UInt16{}, 65536},
		{"UInt32 overflow", &UInt32{}, uint64(1) << 32},
		{"UInt32 hex too long", &UInt32{}, "100000000"},
		{"UInt32 not hex", &UInt32{}, "xyz"},
		{"UInt64 hex too long", &UInt64{}, "10000000000000000"},
		{"UInt64 bool", &UInt64{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.codec.FromJSON(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, codecerr.ErrShapeMismatch), "got %v", err)
		})
	}
}

func TestUIntDecoding(t *testing.T) {
	tests := []struct {
		name     string
		codec    SerializedType
		inputHex string
		expected any
	}{
		{"UInt8 is an int", &UInt8{}, "19", 25},
		{"UInt16 is an int", &UInt16{}, "789A", 30874},
		{"UInt32 is padded hex", &UInt32{}, "00080000", "00080000"},
		{"UInt64 is padded hex", &UInt64{}, "000000000000000A", "000000000000000A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := hex.DecodeString(tc.inputHex)
			require.NoError(t, err)

			v, err := tc.codec.ToJSON(testutil.NewParser(t, data))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}

	_, err := (&UInt32{}).ToJSON(testutil.NewParser(t, []byte{0, 1}))
	assert.True(t, errors.Is(err, codecerr.ErrBufferUnderrun))
}

func TestHashCodecs(t *testing.T) {
	const h256 = "73734B611DDA23D3F5F62E20A173B78AB8406AC5015094DA53F53D39B9EDB06C"

	tests := []struct {
		name  string
		codec SerializedType
		input string
	}{
		{"Hash128", NewHash128(), h256[:32]},
		{"Hash160", NewHash160(), h256[:40]},
		{"Hash256", NewHash256(), h256},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.codec.FromJSON(tc.input)
			require.NoError(t, err)
			assert.Len(t, b, len(tc.input)/2)

			v, err := tc.codec.ToJSON(testutil.NewParser(t, b))
			require.NoError(t, err)
			assert.Equal(t, tc.input, v)

			lower, err := tc.codec.FromJSON(hexLower(tc.input))
			require.NoError(t, err)
			assert.Equal(t, b, lower, "hex input is case insensitive")

			_, err = tc.codec.FromJSON(tc.input[2:])
			assert.True(t, errors.Is(err, ErrInvalidHashLength))
		})
	}

	_, err := NewHash256().FromJSON(42)
	assert.True(t, errors.Is(err, ErrNotAString))
}

func hexLower(s string) string {
	b, _ := hex.DecodeString(s)
	return hex.EncodeToString(b)
}

func TestBlob(t *testing.T) {
	b, err := (&Blob{}).FromJSON("deadBEEF")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, b)

	v, err := (&Blob{}).ToJSON(testutil.NewParser(t, b), len(b))
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF", v)

	empty, err := (&Blob{}).FromJSON("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = (&Blob{}).FromJSON("abc")
	assert.True(t, errors.Is(err, codecerr.ErrInvalidHex))

	_, err = (&Blob{}).ToJSON(testutil.NewParser(t, b))
	assert.True(t, errors.Is(err, ErrMissingLengthHint))
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedHex string
		decoded     string
	}{
		{"XRP", "XRP", "0000000000000000000000000000000000000000", "XRP"},
		{"USD", "USD", "0000000000000000000000005553440000000000", "USD"},
		{"digits", "A1B", "0000000000000000000000004131420000000000", "A1B"},
		{"lowercase as hex", "0000000000000000000000007573640000000000", "0000000000000000000000007573640000000000", "0000000000000000000000007573640000000000"},
		{"symbols as hex", "000000000000000000000000243F210000000000", "000000000000000000000000243f210000000000", "000000000000000000000000243F210000000000"},
		{"non ISO hex", "015841551A748AD2C1F76FF6ECB0CCCD00000000", "015841551a748ad2c1f76ff6ecb0cccd00000000", "015841551A748AD2C1F76FF6ECB0CCCD00000000"},
		{"hex of XRP stays hex", "0000000000000000000000005852500000000000", "0000000000000000000000005852500000000000", "0000000000000000000000005852500000000000"},
		{"hex of USD renders as code", "0000000000000000000000005553440000000000", "0000000000000000000000005553440000000000", "USD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := (&Currency{}).FromJSON(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHex, hex.EncodeToString(b))

			v, err := (&Currency{}).ToJSON(testutil.NewParser(t, b))
			require.NoError(t, err)
			assert.Equal(t, tc.decoded, v)
		})
	}
}

func TestCurrencyErrors(t *testing.T) {
	for _, input := range []any{"US", "USDD", "usd", "Usd", "$?!", "0000", "ZZ00000000000000000000005553440000000000", 5} {
		_, err := (&Currency{}).FromJSON(input)
		require.Error(t, err, "%v", input)
		if _, isString := input.(string); isString {
			assert.True(t, errors.Is(err, codecerr.ErrInvalidCurrency), "%v: %v", input, err)
		}
	}
}

func TestAccountID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hex      string
		expected string
	}{
		{"classic address", testIssuer, testIssuerHex, testIssuer},
		{"hex passes through", "0A20B3C85F482532A9578DBB3950B85CA06594D1", testIssuerHex, testIssuer},
		{"empty is the zero account", "", "0000000000000000000000000000000000000000", "rrrrrrrrrrrrrrrrrrrrrhoLvTp"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := (&AccountID{}).FromJSON(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.hex, hex.EncodeToString(b))

			v, err := (&AccountID{}).ToJSON(testutil.NewParser(t, b), len(b))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)

			raw, err := (&AccountID{}).ToJSON(testutil.NewParser(t, b))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, raw)
		})
	}
}

func TestAccountIDLengthHint(t *testing.T) {
	v, err := (&AccountID{}).ToJSON(testutil.NewParser(t, nil), 0)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = (&AccountID{}).ToJSON(testutil.NewParser(t, make([]byte, 19)), 19)
	assert.True(t, errors.Is(err, ErrInvalidAccountIDLength))

	_, err = (&AccountID{}).FromJSON("rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59C")
	assert.True(t, errors.Is(err, codecerr.ErrAddressEncoding))
}
