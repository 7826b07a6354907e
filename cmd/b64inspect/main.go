// Command b64inspect extracts base64 payloads from untrusted text.
//
// It reads standard input, or each file named on the command
// line, and writes the decoded bytes to standard output.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/united-manufacturing-hub/umh-utils/env"
	"github.com/united-manufacturing-hub/umh-utils/logger"
	"go.uber.org/zap"

	"github.com/inspectkit/lenient/base64"
)

func main() {
	logLevel, _ := env.GetAsString("LOGGING_LEVEL", false, "PRODUCTION") //nolint:errcheck
	log := logger.New(logLevel)
	defer func(logger *zap.SugaredLogger) {
		_ = logger.Sync()
	}(log)

	cfg, err := loadConfig()
	if err != nil {
		zap.S().Fatalf("Invalid configuration: %s", err)
	}
	zap.S().Debugf("Configuration: %+v", cfg)

	if len(os.Args) < 2 {
		if err := run(cfg, "stdin", os.Stdin, os.Stdout); err != nil {
			zap.S().Fatalf("Failed to decode stdin: %s", err)
		}
		return
	}
	for _, name := range os.Args[1:] {
		if err := runFile(cfg, name, os.Stdout); err != nil {
			zap.S().Fatalf("Failed to decode %s: %s", name, err)
		}
	}
}

func runFile(cfg config, name string, w io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return run(cfg, name, f, w)
}

// run decodes everything in r and writes the result to w.
func run(cfg config, name string, r io.Reader, w io.Writer) error {
	enc := base64.StdEncoding
	if cfg.RejectInvalid {
		enc = enc.RejectInvalid()
	}

	if cfg.Stream {
		n, err := io.Copy(w, base64.NewDecoder(enc, r))
		if err != nil {
			return errors.Wrapf(err, "stream decode after %d bytes", n)
		}
		zap.S().Debugf("Decoded %d bytes from %s", n, name)
		return nil
	}

	src, err := readAll(r, cfg.MaxInput)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case cfg.RejectInvalid:
		out, err = enc.DecodeString(string(src))
	case cfg.Forgiving:
		// Report rejected padding instead of writing nothing.
		out, err = base64.StdEncoding.DecodeString(string(src))
	default:
		out, err = base64.Decode(string(src), false)
	}
	if err != nil {
		return errors.Wrapf(err, "decode %d bytes", len(src))
	}
	zap.S().Debugf("Decoded %d bytes from %d input bytes of %s", len(out), len(src), name)

	_, err = w.Write(out)
	return errors.WithStack(err)
}

func readAll(r io.Reader, max int) ([]byte, error) {
	if max == 0 {
		b, err := io.ReadAll(r)
		return b, errors.WithStack(err)
	}
	b, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(b) > max {
		return nil, errors.Errorf("input exceeds %d bytes", max)
	}
	return b, nil
}
