package addresscodec

// EncodeAccountPublicKey encodes a 33 byte public key with the account
// public key version.
func EncodeAccountPublicKey(b []byte) (string, error) {
	return Encode(b, AccountPublicKeyPrefix, PublicKeyLength)
}

// DecodeAccountPublicKey reverses EncodeAccountPublicKey.
func DecodeAccountPublicKey(key string) ([]byte, error) {
	return decodeFixed(key, AccountPublicKeyPrefix, PublicKeyLength)
}

// EncodeNodePublicKey encodes a 33 byte public key with the node public
// key version.
func EncodeNodePublicKey(b []byte) (string, error) {
	return Encode(b, NodePublicKeyPrefix, PublicKeyLength)
}

// DecodeNodePublicKey reverses EncodeNodePublicKey.
func DecodeNodePublicKey(key string) ([]byte, error) {
	return decodeFixed(key, NodePublicKeyPrefix, PublicKeyLength)
}

func decodeFixed(s string, prefix []byte, length int) ([]byte, error) {
	payload, err := Decode(s, prefix)
	if err != nil {
		return nil, err
	}
	if len(payload) != length {
		return nil, wrapf(ErrInvalidPayloadLength, "got %d bytes, want %d", len(payload), length)
	}
	return payload, nil
}
