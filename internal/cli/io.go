package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
	"github.com/ugorji/go/codec"
)

// jsonHandle reads objects as map[string]any and writes keys in sorted
// order. indent 0 writes compact JSON.
func jsonHandle(indent int) *codec.JsonHandle {
	jh := new(codec.JsonHandle)
	jh.MapType = reflect.TypeOf(map[string]any(nil))
	jh.Canonical = true
	jh.Indent = int8(indent)
	return jh
}

// readArg returns the input named by args: the first argument inline,
// "@path" for a file, or stdin for "-" or no argument.
func readArg(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	if path, ok := strings.CutPrefix(args[0], "@"); ok {
		return os.ReadFile(path)
	}
	return []byte(args[0]), nil
}

// readHex returns hex input with surrounding whitespace and quotes removed.
func readHex(cmd *cobra.Command, args []string) (string, error) {
	b, err := readArg(cmd, args)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(string(b)), `"`), nil
}

// parseJSONObject parses a JSON object that may contain comments and
// trailing commas.
func parseJSONObject(data []byte) (map[string]any, error) {
	var m map[string]any
	dec := codec.NewDecoderBytes(jsonc.ToJSON(data), jsonHandle(0))
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("invalid JSON object: null")
	}
	return m, nil
}

func readJSONObject(cmd *cobra.Command, args []string) (map[string]any, error) {
	b, err := readArg(cmd, args)
	if err != nil {
		return nil, err
	}
	return parseJSONObject(b)
}

// looksLikeJSON reports whether input starts with an object.
func looksLikeJSON(b []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(b), []byte("{"))
}

func marshalJSON(v any, indent int) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, jsonHandle(indent)).Encode(v); err != nil {
		return nil, err
	}
	return out, nil
}

// writeJSON writes v followed by a newline, indented per the configuration.
func writeJSON(w io.Writer, v any) error {
	out, err := marshalJSON(v, appConfig.Output.Indent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
