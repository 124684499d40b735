package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	cfg "github.com/verus-go/verusrpc/config"
	ctypes "github.com/verus-go/verusrpc/rpc/core/types"
)

// parseArgs turns command line arguments into call parameters. An argument
// that is a complete JSON value is sent as that value, anything else as a
// string. Quote an argument ('"100"') to force a string.
func parseArgs(args []string) []any {
	params := make([]any, len(args))
	for i, arg := range args {
		params[i] = parseArg(arg)
	}
	return params
}

func parseArg(arg string) any {
	dec := json.NewDecoder(strings.NewReader(arg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return arg
	}
	// trailing data, e.g. "1 2"
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return arg
	}
	return v
}

// printResult writes v to the command's output. In text mode strings are
// printed bare and null prints nothing, like bitcoin-cli.
func printResult(cmd *cobra.Command, v ctypes.Value) error {
	w := cmd.OutOrStdout()
	if config.Output == cfg.OutputJSON {
		var buf bytes.Buffer
		if err := json.Compact(&buf, v.Raw()); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}

	switch v.Kind() {
	case ctypes.KindNull:
		return nil
	case ctypes.KindString:
		s, err := v.Str()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, v.Raw(), "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}
}
