package base64

import (
	"bytes"

	cbase64 "github.com/cristalhq/base64"
	"github.com/pkg/errors"
)

// EncodeToString returns the padded standard base64 encoding of
// src.
func EncodeToString(src []byte) string {
	return cbase64.StdEncoding.EncodeToString(src)
}

// DecodeStrict decodes src as padded standard base64.
//
// Input ends at the first zero byte; anything after it is
// ignored. Unlike the forgiving decoder, DecodeStrict rejects
// whitespace and characters outside the alphabet.
func DecodeStrict(src string) ([]byte, error) {
	b := []byte(src)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) == 0 {
		return []byte{}, nil
	}
	out, err := cbase64.StdEncoding.DecodeString(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "base64: strict decode of %d bytes", len(b))
	}
	return out, nil
}

// DecodeForgiving decodes src with StdEncoding.
//
// It sizes a buffer with Probe, decodes into it with Fill and
// returns the decoded bytes. Rejected input decodes to an empty
// slice; use StdEncoding.DecodeString to tell it apart from input
// without data.
func DecodeForgiving(src string) []byte {
	b := []byte(src)
	size := Probe(b)
	if size == 0 {
		return []byte{}
	}
	dst := make([]byte, size)
	n := Fill(dst, b)
	return dst[:n:n]
}

// Decode decodes src with DecodeForgiving if forgiving is set,
// and with DecodeStrict otherwise.
func Decode(src string, forgiving bool) ([]byte, error) {
	if forgiving {
		return DecodeForgiving(src), nil
	}
	return DecodeStrict(src)
}
