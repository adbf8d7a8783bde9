package types

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/testutil"
	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

const (
	testIssuer    = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	testIssuerHex = "0a20b3c85f482532a9578dbb3950b85ca06594d1"
	usdHex        = "0000000000000000000000005553440000000000"
)

func TestXRPAmountSerialization(t *testing.T) {
	tests := []struct {
		name        string
		drops       string
		expectedHex string
	}{
		{"zero XRP", "0", "4000000000000000"},
		{"one drop", "1", "4000000000000001"},
		{"100 drops", "100", "4000000000000064"},
		{"12345 drops", "12345", "4000000000003039"},
		{"1 XRP in drops", "1000000", "40000000000f4240"},
		{"10000 XRP in drops", "10000000000", "40000002540be400"},
		{"whole number with fraction zeros", "1.0", "4000000000000001"},
		{"exponent notation", "1e6", "40000000000f4240"},
		{"max XRP supply", "100000000000000000", "416345785d8a0000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := (&Amount{}).FromJSON(tc.drops)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHex, hex.EncodeToString(result))
		})
	}
}

func TestXRPAmountValidation(t *testing.T) {
	tests := []struct {
		name  string
		drops string
	}{
		{"negative", "-1"},
		{"fractional drop", "1.5"},
		{"decimal not allowed", "1.1"},
		{"exceeds max drops", "100000000000000001"},
		{"way over max", "1000000000000000000"},
		{"not a number", "ten"},
		{"empty", ""},
		{"exponent at int limit", "1e9223372036854775807"},
		{"negative exponent at int limit", "1e-9223372036854775808"},
		{"exponent past drop digits", "1e10000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyXrpValue(tc.drops)
			require.Error(t, err)

			_, err = (&Amount{}).FromJSON(tc.drops)
			require.Error(t, err)
			assert.True(t, errors.Is(err, codecerr.ErrAmountOutOfRange), "got %v", err)
		})
	}

	for _, drops := range []string{"1", "22", "333", "4444", "1000000000000", "100000000000000000"} {
		assert.NoError(t, verifyXrpValue(drops), drops)
	}
}

func TestXRPAmountDeserialization(t *testing.T) {
	tests := []struct {
		name          string
		inputHex      string
		expectedDrops string
	}{
		{"all zero bytes", "0000000000000000", "0"},
		{"positive zero", "4000000000000000", "0"},
		{"one drop", "4000000000000001", "1"},
		{"1 XRP", "40000000000F4240", "1000000"},
		{"negative drops", "0000000000000064", "-100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := hex.DecodeString(tc.inputHex)
			require.NoError(t, err)

			result, err := (&Amount{}).ToJSON(testutil.NewParser(t, data))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDrops, result)
		})
	}
}

func TestIOUAmountSerialization(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		currency string
		valueHex string
		currHex  string
	}{
		{"1 USD", "1", "USD", "d4838d7ea4c68000", usdHex},
		{"10 USD", "10", "USD", "d4c38d7ea4c68000", usdHex},
		{"100 USD", "100", "USD", "d5038d7ea4c68000", usdHex},
		{"1000000 USD", "1000000", "USD", "d6038d7ea4c68000", usdHex},
		{"1234567.1", "1234567.1", "USD", "d60462d50d726700", usdHex},
		{"1234567.12", "1234567.12", "USD", "d60462d50ea39400", usdHex},
		{"zero", "0", "USD", "8000000000000000", usdHex},
		{"negative zero", "-0", "USD", "8000000000000000", usdHex},
		{"negative 2", "-2", "USD", "94871afd498d0000", usdHex},
		{"310", "310", "USD", "d50b036efecdc000", usdHex},
		{"3.1", "3.1", "USD", "d48b036efecdc000", usdHex},
		{"0.31", "0.31", "USD", "d44b036efecdc000", usdHex},
		{"EUR", "1", "EUR", "d4838d7ea4c68000", "0000000000000000000000004555520000000000"},
		{"custom hex currency", "1", "015841551A748AD2C1F76FF6ECB0CCCD00000000", "d4838d7ea4c68000", "015841551a748ad2c1f76ff6ecb0cccd00000000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := (&Amount{}).FromJSON(map[string]any{
				"value":    tc.value,
				"currency": tc.currency,
				"issuer":   testIssuer,
			})
			require.NoError(t, err)
			require.Len(t, result, CurrencyAmountByteLength)
			assert.Equal(t, tc.valueHex+tc.currHex+testIssuerHex, hex.EncodeToString(result))
		})
	}
}

func TestIOUAmountErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected error
	}{
		{"XRP currency", map[string]any{"value": "1", "currency": "XRP", "issuer": testIssuer}, codecerr.ErrInvalidCurrency},
		{"XRP currency as hex", map[string]any{"value": "1", "currency": "0000000000000000000000005852500000000000", "issuer": testIssuer}, codecerr.ErrInvalidCurrency},
		{"zero currency hex", map[string]any{"value": "1", "currency": "0000000000000000000000000000000000000000", "issuer": testIssuer}, codecerr.ErrInvalidCurrency},
		{"bad currency", map[string]any{"value": "1", "currency": "USDD", "issuer": testIssuer}, codecerr.ErrInvalidCurrency},
		{"missing issuer", map[string]any{"value": "1", "currency": "USD"}, ErrMissingAmountField},
		{"value not a string", map[string]any{"value": 1, "currency": "USD", "issuer": testIssuer}, ErrMissingAmountField},
		{"bad value", map[string]any{"value": "1..2", "currency": "USD", "issuer": testIssuer}, ErrInvalidAmountValue},
		{"bad issuer", map[string]any{"value": "1", "currency": "USD", "issuer": "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59C"}, codecerr.ErrAddressEncoding},
		{"precision", map[string]any{"value": "12345678901234567", "currency": "USD", "issuer": testIssuer}, codecerr.ErrAmountOutOfRange},
		{"not an amount", 12, codecerr.ErrShapeMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := (&Amount{}).FromJSON(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expected), "got %v", err)
		})
	}
}

func TestIOUExponentRange(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		errorType string
	}{
		{"minimum adjusted exponent", "1e-81", ""},
		{"exponent 80", "1e80", ""},
		{"maximum adjusted exponent", "1e95", ""},
		{"max mantissa at max exponent", "9999999999999999e80", ""},
		{"max precision 16 digits", "9999999999999999", ""},
		{"trailing zeros do not count", "12345678901234560", ""},
		{"exponent too small", "1e-82", "Exponent"},
		{"exponent too large", "1e96", "Exponent"},
		{"exponent overflow", "1e99999999999999999999", "Exponent"},
		{"exponent at int limit", "1e9223372036854775807", "Exponent"},
		{"negative exponent at int limit", "1e-9223372036854775808", "Exponent"},
		{"fraction digits with low exponent", "0.5e-9223372036854775807", "Exponent"},
		{"precision exceeded", "12345678901234567", "Precision"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := verifyIOUValue(tc.value)
			if tc.errorType == "" {
				require.NoError(t, err)
				return
			}
			var outOfRange *OutOfRangeError
			require.True(t, errors.As(err, &outOfRange), "got %v", err)
			assert.Equal(t, tc.errorType, outOfRange.Type)
			assert.True(t, errors.Is(err, codecerr.ErrAmountOutOfRange))
		})
	}
}

func TestIOUAmountDeserialization(t *testing.T) {
	tests := []struct {
		name          string
		valueHex      string
		expectedValue string
	}{
		{"1", "D4838D7EA4C68000", "1"},
		{"zero", "8000000000000000", "0"},
		{"negative 2", "94871AFD498D0000", "-2"},
		{"0.31", "D44B036EFECDC000", "0.31"},
		{"1234567.12", "D60462D50EA39400", "1234567.12"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := hex.DecodeString(tc.valueHex + usdHex + testIssuerHex)
			require.NoError(t, err)

			result, err := (&Amount{}).ToJSON(testutil.NewParser(t, data))
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"value":    tc.expectedValue,
				"currency": "USD",
				"issuer":   testIssuer,
			}, result)
		})
	}
}

func TestIssuedValueText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"7072.8", "7072.8"},
		{"0.000001", "0.000001"},
		{"1000000000000000", "1000000000000000"},
		{"10000000000", "10000000000"},
		{"100000000000", "1e11"},
		{"1e80", "1e80"},
		{"1e-81", "1e-81"},
		{"-1.5e-30", "-15e-31"},
		{"123.456", "123.456"},
		{"0.0000000001", "0.0000000001"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			b, err := encodeIssuedValue(tc.input)
			require.NoError(t, err)
			text := decodeIssuedValue(byteseq.New(b))
			assert.Equal(t, tc.expected, text)

			again, err := encodeIssuedValue(text)
			require.NoError(t, err)
			assert.Equal(t, b, again, "rendered text must encode to the same bytes")
		})
	}
}

func TestAmountRoundtrip(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"zero XRP", "0"},
		{"1 drop", "1"},
		{"1000 XRP", "1000000000"},
		{"1 USD", map[string]any{"value": "1", "currency": "USD", "issuer": testIssuer}},
		{"zero USD", map[string]any{"value": "0", "currency": "USD", "issuer": testIssuer}},
		{"negative 100 USD", map[string]any{"value": "-100", "currency": "USD", "issuer": testIssuer}},
		{"3.14159 EUR", map[string]any{"value": "3.14159", "currency": "EUR", "issuer": testIssuer}},
		{"hex currency", map[string]any{"value": "7072.8", "currency": "015841551A748AD2C1F76FF6ECB0CCCD00000000", "issuer": testIssuer}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serialized, err := (&Amount{}).FromJSON(tc.input)
			require.NoError(t, err)

			p := testutil.NewParser(t, serialized)
			deserialized, err := (&Amount{}).ToJSON(p)
			require.NoError(t, err)
			assert.Equal(t, tc.input, deserialized)
			assert.False(t, p.HasMore())
		})
	}
}

func TestAmountTruncated(t *testing.T) {
	data, err := hex.DecodeString("D4838D7EA4C68000" + usdHex)
	require.NoError(t, err)

	_, err = (&Amount{}).ToJSON(testutil.NewParser(t, data))
	assert.True(t, errors.Is(err, codecerr.ErrBufferUnderrun))
}

func TestAmountConstants(t *testing.T) {
	assert.Equal(t, -96, MinIOUExponent)
	assert.Equal(t, 80, MaxIOUExponent)
	assert.Equal(t, 16, MaxIOUPrecision)
	assert.Equal(t, uint64(1000000000000000), uint64(MinIOUMantissa))
	assert.Equal(t, uint64(9999999999999999), uint64(MaxIOUMantissa))
	assert.Equal(t, 8, NativeAmountByteLength)
	assert.Equal(t, 48, CurrencyAmountByteLength)
	assert.Equal(t, byte(0x80), byte(NotXRPBitMask))
	assert.Equal(t, byte(0x40), byte(PosSignBitMask))
}

func TestAmountBitHelpers(t *testing.T) {
	tests := []struct {
		firstByte byte
		native    bool
		positive  bool
	}{
		{0x40, true, true},
		{0x00, true, false},
		{0x80, false, false},
		{0xC0, false, true},
		{0x7F, true, true},
	}

	for _, tc := range tests {
		head := byteseq.New([]byte{tc.firstByte})
		assert.Equal(t, tc.native, isNative(head), "isNative(0x%02X)", tc.firstByte)
		assert.Equal(t, tc.positive, isPositive(head), "isPositive(0x%02X)", tc.firstByte)
	}
}

func TestSerializeIssuedCurrencyCode(t *testing.T) {
	tests := []struct {
		currency    string
		expectedHex string
		expectError bool
	}{
		{"USD", usdHex, false},
		{"A*B", "000000000000000000000000412a420000000000", false},
		{"0000000000000000000000004555520000000000", "0000000000000000000000004555520000000000", false},
		{"XRP", "", true},
		{"US", "", true},
		{"USDD", "", true},
		{"0000000000000000000000005852500000000000", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.currency, func(t *testing.T) {
			b, err := serializeIssuedCurrencyCode(tc.currency)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedHex, hex.EncodeToString(b))
		})
	}
}
