package cli

import (
	"encoding/hex"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"io"
	"nop/config"
	"os"
	"strings"
)

// ResolveOutputFormat picks hex or raw for the auto format. Files and pipes
// get raw bytes; terminals and in-memory writers get hex.
func ResolveOutputFormat(format string, w io.Writer) (string, error) {
	switch format {
	case config.OutputFormatHex, config.OutputFormatRaw:
		return format, nil
	case config.OutputFormatAuto, "":
		f, ok := w.(*os.File)
		if !ok || isatty.IsTerminal(f.Fd()) {
			return config.OutputFormatHex, nil
		}
		return config.OutputFormatRaw, nil
	default:
		return "", errors.Errorf("invalid output format %q", format)
	}
}

// WriteEncoded writes data as hex followed by a newline, or as raw bytes.
func WriteEncoded(w io.Writer, format string, data []byte) error {
	var err error
	switch format {
	case config.OutputFormatRaw:
		_, err = w.Write(data)
	case config.OutputFormatHex:
		_, err = io.WriteString(w, hex.EncodeToString(data)+"\n")
	default:
		err = errors.Errorf("invalid output format %q", format)
	}
	return err
}

// ParseHex accepts hex with an optional 0x prefix and any embedded
// whitespace, so that wrapped dumps can be pasted directly.
func ParseHex(in string) ([]byte, error) {
	in = strings.Join(strings.Fields(in), "")
	in = strings.TrimPrefix(strings.TrimPrefix(in, "0x"), "0X")
	b, err := hex.DecodeString(in)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding hex input")
	}
	return b, nil
}

// ReadInput returns the bytes named by arg. "-" reads stdin: raw bytes when
// stdin is a pipe or file, hex when it is a terminal.
func ReadInput(arg string, stdin *os.File) ([]byte, error) {
	if arg != "-" {
		return ParseHex(arg)
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "error reading stdin")
	}
	if isatty.IsTerminal(stdin.Fd()) {
		return ParseHex(string(b))
	}
	return b, nil
}
