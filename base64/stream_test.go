package base64

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestDecoder(t *testing.T) {
	src := bytes.Repeat([]byte("forgiving stream\x00\xff"), 200)
	enc := base64.StdEncoding.EncodeToString(src)
	// Wrap at 76 columns like MIME.
	var b strings.Builder
	for i := 0; i < len(enc); i += 76 {
		end := i + 76
		if end > len(enc) {
			end = len(enc)
		}
		b.WriteString(enc[i:end])
		b.WriteString("\r\n")
	}
	text := b.String()

	readers := []struct {
		name string
		r    func(io.Reader) io.Reader
	}{
		{"plain", func(r io.Reader) io.Reader { return r }},
		{"one byte", iotest.OneByteReader},
		{"half", iotest.HalfReader},
		{"data err", iotest.DataErrReader},
	}
	for _, rd := range readers {
		t.Run(rd.name, func(t *testing.T) {
			d := NewDecoder(StdEncoding, rd.r(strings.NewReader(text)))
			got, err := io.ReadAll(d)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(src, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecoderMatchesFill(t *testing.T) {
	for _, tc := range decodeTests {
		if tc.err != nil {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(StdEncoding, iotest.OneByteReader(strings.NewReader(tc.in)))
			got, err := io.ReadAll(d)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(tc.want, got) {
				t.Fatalf("expected %x, got %x", tc.want, got)
			}
		})
	}
}

func TestDecoderPadding(t *testing.T) {
	d := NewDecoder(StdEncoding, iotest.OneByteReader(strings.NewReader("TWFuT=QQ==")))
	got, err := io.ReadAll(d)
	if !errors.Is(err, ErrPadding) {
		t.Fatalf("expected ErrPadding, got %v", err)
	}
	if diff := cmp.Diff([]byte("Man"), got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	// The error is sticky.
	if n, err := d.Read(make([]byte, 8)); n != 0 || !errors.Is(err, ErrPadding) {
		t.Fatalf("expected (0, ErrPadding), got (%d, %v)", n, err)
	}
}

func TestDecoderRejectInvalid(t *testing.T) {
	d := NewDecoder(StdEncoding.RejectInvalid(), strings.NewReader("TWFu\nTWFu!"))
	got, err := io.ReadAll(d)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no output, got %q", got)
	}
}

func TestDecoderReadError(t *testing.T) {
	want := errors.New("boom")
	d := NewDecoder(StdEncoding, iotest.ErrReader(want))
	if _, err := io.ReadAll(d); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
