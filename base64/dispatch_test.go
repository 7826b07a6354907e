package base64

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStrictRoundTrip(t *testing.T) {
	for _, s := range []string{"M", "Ma", "Man", "forgiving decoder", "\x00\x01\x02\xff"} {
		enc := EncodeToString([]byte(s))
		got, err := DecodeStrict(enc)
		if err != nil {
			t.Fatalf("%q: %v", enc, err)
		}
		if diff := cmp.Diff([]byte(s), got); diff != "" {
			t.Fatalf("%q: mismatch (-want +got):\n%s", enc, diff)
		}
		if got := DecodeForgiving(enc); !bytes.Equal(got, []byte(s)) {
			t.Fatalf("%q: forgiving decode returned %x", enc, got)
		}
	}
}

func TestEncodeToString(t *testing.T) {
	if got := EncodeToString([]byte{0x4d}); got != "TQ==" {
		t.Fatalf("expected %q, got %q", "TQ==", got)
	}
}

func TestDecodeStrictStopsAtZero(t *testing.T) {
	got, err := DecodeStrict("TWFu\x00 not base64 at all")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte("Man"), got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	got, err = DecodeStrict("\x00TWFu")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %x", got)
	}
}

func TestDecodeDispatch(t *testing.T) {
	const noisy = "TW Fu\x00TWFu"

	got, err := Decode(noisy, true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte("ManMan"), got); diff != "" {
		t.Fatalf("forgiving mismatch (-want +got):\n%s", diff)
	}

	got, err = Decode("TWFu\x00TWFu", false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte("Man"), got); diff != "" {
		t.Fatalf("strict mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeForgivingRejected(t *testing.T) {
	for _, in := range []string{"", "T=Q", "!!!"} {
		got := DecodeForgiving(in)
		if got == nil || len(got) != 0 {
			t.Fatalf("%q: expected empty slice, got %#v", in, got)
		}
	}
}
