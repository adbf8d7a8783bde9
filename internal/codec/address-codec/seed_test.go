package addresscodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrplcodec/internal/crypto"
)

func seedFromPassphrase(passphrase string) []byte {
	h := crypto.Sha512Half([]byte(passphrase))
	return h[:FamilySeedLength]
}

func TestEncodeSeedFromPassphrase(t *testing.T) {
	tests := []struct {
		passphrase string
		seed       string
	}{
		{"masterpassphrase", "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"Non-Random Passphrase", "snMKnVku798EnBwUfxeSD8953sLYA"},
		{"cookies excitement hand public", "sspUXGrmjQhq6mgc24jiRuevZiwKT"},
	}

	for _, tc := range tests {
		t.Run(tc.passphrase, func(t *testing.T) {
			encoded, err := EncodeSeed(seedFromPassphrase(tc.passphrase), crypto.KeyTypeSecp256k1)
			require.NoError(t, err)
			assert.Equal(t, tc.seed, encoded)

			entropy, kt, err := DecodeSeed(tc.seed)
			require.NoError(t, err)
			assert.Equal(t, crypto.KeyTypeSecp256k1, kt)
			assert.Equal(t, seedFromPassphrase(tc.passphrase), entropy)
		})
	}
}

func TestSeedRoundTrip(t *testing.T) {
	entropy := seedFromPassphrase("test passphrase for roundtrip validation")

	for _, kt := range []crypto.KeyType{crypto.KeyTypeSecp256k1, crypto.KeyTypeEd25519} {
		t.Run(kt.String(), func(t *testing.T) {
			encoded, err := EncodeSeed(entropy, kt)
			require.NoError(t, err)
			if kt == crypto.KeyTypeEd25519 {
				assert.Equal(t, "sEd", encoded[:3])
			} else {
				assert.Equal(t, byte('s'), encoded[0])
			}

			decoded, decodedType, err := DecodeSeed(encoded)
			require.NoError(t, err)
			assert.Equal(t, entropy, decoded)
			assert.Equal(t, kt, decodedType)
		})
	}
}

func TestDecodeEd25519Seed(t *testing.T) {
	entropy, kt, err := DecodeSeed("sEdTzRkEgPoxDG1mJ6WkSucHWnMkm1H")
	require.NoError(t, err)
	assert.Equal(t, crypto.KeyTypeEd25519, kt)
	assert.Len(t, entropy, FamilySeedLength)
}

func TestEncodeSeedErrors(t *testing.T) {
	_, err := EncodeSeed(make([]byte, 15), crypto.KeyTypeSecp256k1)
	assert.True(t, errors.Is(err, ErrInvalidPayloadLength))

	_, err = EncodeSeed(make([]byte, 16), crypto.KeyTypeUnknown)
	assert.True(t, errors.Is(err, ErrInvalidKeyType))
}

func TestDecodeSeedErrors(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{"empty", ""},
		{"too short", "sspUXGrmjQhq6mgc24jiRuevZiwK"},
		{"too long", "sspUXGrmjQhq6mgc24jiRuevZiwKTT"},
		{"bad checksum", "snoPBrXtMeMyMHUVTgbuqAfg1SUTa"},
		{"contains 0", "sn0PBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"contains O", "snOPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"contains I", "snIPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"contains l", "snlPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"account address", masterAddress},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeSeed(tc.seed)
			assert.Error(t, err)
		})
	}
}
