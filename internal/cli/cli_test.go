package cli

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addresscodec "github.com/LeJamon/xrplcodec/internal/codec/address-codec"
)

const (
	masterAddress   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	masterAccountID = "B5F762798A53D543A014CAF8B297CFF8F2F937E8"
	masterPublicKey = "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"

	testAccount   = "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys"
	testAccountID = "DD76483FACDEE26E60D8A586BB58D09F27045C46"

	paymentJSON = `{
	// a self payment
	"TransactionType": "Payment",
	"Fee": "10",
	"Sequence": 1,
	"Account": "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	"Destination": "rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys",
	"Amount": "1000000",
}`
	paymentHex = "1200002400000001" +
		"6140000000000F4240" +
		"68400000000000000A" +
		"8114" + testAccountID +
		"8314" + testAccountID
)

// resetFlags restores every flag to its default so that runs do not leak
// into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "off"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := runCLI(t, "", "encode", paymentJSON)
	require.NoError(t, err)
	assert.Equal(t, paymentHex+"\n", out)

	out, err = runCLI(t, paymentJSON, "encode")
	require.NoError(t, err)
	assert.Equal(t, paymentHex+"\n", out, "reads stdin without an argument")

	path := filepath.Join(t.TempDir(), "tx.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(paymentJSON), 0644))
	out, err = runCLI(t, "", "encode", "@"+path)
	require.NoError(t, err)
	assert.Equal(t, paymentHex+"\n", out)
}

func TestEncodeCommandErrors(t *testing.T) {
	_, err := runCLI(t, "", "encode", "not json")
	assert.Error(t, err)

	_, err = runCLI(t, "", "encode", `{"TransactionType": "NotATransaction"}`)
	assert.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	out, err := runCLI(t, "", "--indent", "0", "decode", strings.ToLower(paymentHex))
	require.NoError(t, err)
	assert.Equal(t,
		`{"Account":"rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys","Amount":"1000000","Destination":"rMBzp8CgpE441cp5PVyA9rpVV7oT8hP3ys","Fee":"10","Sequence":"00000001","TransactionType":"Payment"}`+"\n",
		out)

	_, err = runCLI(t, "", "decode", "ABC")
	assert.Error(t, err)
}

func TestSigningCommands(t *testing.T) {
	out, err := runCLI(t, "", "encode-for-signing", paymentJSON)
	require.NoError(t, err)
	assert.Equal(t, "53545800"+paymentHex+"\n", out)

	out, err = runCLI(t, "", "encode-for-multisigning", "--signer", testAccount, paymentJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "534D5400"), out)
	assert.True(t, strings.HasSuffix(out, testAccountID+"\n"), out)

	_, err = runCLI(t, "", "encode-for-multisigning", paymentJSON)
	assert.Error(t, err, "signer is required")

	out, err = runCLI(t, "", "encode-for-signing-claim",
		`{"Channel": "43904CBFCDCEC530B4037871F86EE90BF799DF8D2E0EA564BC8A3F332E4F5FB1", "Amount": "1000"}`)
	require.NoError(t, err)
	assert.Equal(t, "434C4D0043904CBFCDCEC530B4037871F86EE90BF799DF8D2E0EA564BC8A3F332E4F5FB100000000000003E8\n", out)

	out, err = runCLI(t, "", "encode-for-signing-batch",
		`{"flags": 1, "txIDs": ["ABE4871E9083DF66727045D49DEEDD3A6F166EB7F8D1E92FE868F02E76B2C5CA"]}`)
	require.NoError(t, err)
	assert.Equal(t, "4243480000000001"+"00000001"+"ABE4871E9083DF66727045D49DEEDD3A6F166EB7F8D1E92FE868F02E76B2C5CA\n", out)
}

func TestTxIDCommand(t *testing.T) {
	fromHex, err := runCLI(t, "", "tx-id", paymentHex)
	require.NoError(t, err)
	fromJSON, err := runCLI(t, "", "tx-id", paymentJSON)
	require.NoError(t, err)

	assert.Len(t, strings.TrimSpace(fromHex), 64)
	assert.Equal(t, fromHex, fromJSON)
}

func TestBatchCommand(t *testing.T) {
	input := strings.Join([]string{
		"# mixed input",
		`{"TransactionType": "Payment", "Fee": "10", "Sequence": 1, "Account": "` + testAccount +
			`", "Destination": "` + testAccount + `", "Amount": "1000000"}`,
		"",
		paymentHex,
		`{"Fee": "10"}`,
	}, "\n")

	out, err := runCLI(t, input, "batch", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, paymentHex, lines[0])
	assert.Contains(t, lines[1], `"TransactionType":"Payment"`)
	assert.Equal(t, "68400000000000000A", lines[2])
}

func TestBatchCommandReportsLine(t *testing.T) {
	input := paymentHex + "\n" + "ZZZZ\n"

	_, err := runCLI(t, input, "batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCompareCommand(t *testing.T) {
	out, err := runCLI(t, "", "compare", paymentHex, strings.ToLower(paymentHex))
	require.NoError(t, err)
	assert.Contains(t, out, "identical")

	other := strings.Replace(paymentHex, "68400000000000000A", "68400000000000000C", 1)
	out, err = runCLI(t, "", "compare", paymentHex, other)
	require.NoError(t, err)
	assert.Contains(t, out, "Changed fields: [Fee]")
	assert.Contains(t, out, `"10"`)
	assert.Contains(t, out, `"12"`)

	_, err = runCLI(t, "", "compare", "--exit-code", paymentHex, other)
	assert.ErrorIs(t, err, errDifferent)
}

func TestAddressCommands(t *testing.T) {
	out, err := runCLI(t, "", "address", "encode", masterAccountID)
	require.NoError(t, err)
	assert.Equal(t, masterAddress+"\n", out)

	out, err = runCLI(t, "", "address", "decode", masterAddress)
	require.NoError(t, err)
	assert.Equal(t, masterAccountID+"\n", out)

	out, err = runCLI(t, "", "address", "from-pubkey", masterPublicKey)
	require.NoError(t, err)
	assert.Equal(t, masterAddress+"\n", out)

	out, err = runCLI(t, "", "address", "encode-seed", "DEDCE9CE67B451D852FD4E846FCDE31C")
	require.NoError(t, err)
	assert.Equal(t, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb\n", out)

	out, err = runCLI(t, "", "--indent", "0", "address", "decode-seed", "snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	require.NoError(t, err)
	assert.Equal(t, `{"entropy":"DEDCE9CE67B451D852FD4E846FCDE31C","key_type":"secp256k1"}`+"\n", out)

	_, err = runCLI(t, "", "address", "decode", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi")
	assert.Error(t, err)

	_, err = runCLI(t, "", "address", "encode-seed", "--key-type", "rsa", "DEDCE9CE67B451D852FD4E846FCDE31C")
	assert.Error(t, err)
}

func TestDecodePublicKeyCommand(t *testing.T) {
	pubKey, err := hex.DecodeString(masterPublicKey)
	require.NoError(t, err)
	nodeKey, err := addresscodec.EncodeNodePublicKey(pubKey)
	require.NoError(t, err)
	accountKey, err := addresscodec.EncodeAccountPublicKey(pubKey)
	require.NoError(t, err)

	out, err := runCLI(t, "", "--indent", "0", "address", "decode-public-key", nodeKey)
	require.NoError(t, err)
	assert.Equal(t,
		`{"key_type":"secp256k1","kind":"node","node_id":"`+masterAccountID+`","public_key":"`+masterPublicKey+`"}`+"\n",
		out)

	out, err = runCLI(t, "", "--indent", "0", "address", "decode-public-key", accountKey)
	require.NoError(t, err)
	assert.Equal(t,
		`{"account_id":"`+masterAccountID+`","address":"`+masterAddress+`","key_type":"secp256k1","kind":"account","public_key":"`+masterPublicKey+`"}`+"\n",
		out)

	_, err = runCLI(t, "", "address", "decode-public-key", masterAddress)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xrplcodec version 0.1.0-dev")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xrplcodec.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nindent = 0\n"), 0644))

	out, err := runCLI(t, "", "--conf", path, "decode", "68400000000000000A")
	require.NoError(t, err)
	assert.Equal(t, `{"Fee":"10"}`+"\n", out)

	_, err = runCLI(t, "", "--conf", filepath.Join(t.TempDir(), "missing.toml"), "version")
	assert.Error(t, err)
}
