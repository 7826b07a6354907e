package base64

import (
	"io"

	"github.com/pkg/errors"

	"github.com/inspectkit/lenient"
)

var (
	// ErrPadding is returned when a padding character appears as
	// the second symbol of a group.
	ErrPadding = errors.New("base64: padding after a single symbol")

	// ErrCorrupt is returned by encodings created with
	// RejectInvalid when the input contains a byte that is neither
	// in the alphabet nor whitespace.
	ErrCorrupt = errors.New("base64: invalid byte in input")
)

// Encoding is a forgiving decoding of the standard base64
// alphabet.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
// An Encoding is safe for concurrent use.
type Encoding struct {
	strict bool
}

// StdEncoding skips every byte outside the alphabet.
var StdEncoding = &Encoding{}

// RejectInvalid returns an identical Encoding that fails with
// ErrCorrupt on any byte that is neither in the alphabet, the
// padding character, nor one of '\t', '\n', '\r' and ' '.
func (e Encoding) RejectInvalid() *Encoding {
	e.strict = true
	return &e
}

// Probe returns the size of the buffer Fill needs for src.
//
// The result is an upper bound, not the decoded length. It is 0
// when src holds no alphabet characters or when src is rejected.
func (e *Encoding) Probe(src []byte) int {
	m := machine[counter]{strict: e.strict}
	m.write(src)
	_, k, err := m.close()
	if err != nil {
		return 0
	}
	return m.capacity(k)
}

// Fill decodes src into dst and returns the number of decoded
// bytes.
//
// dst must be at least Probe(src) bytes long. Fill writes a zero
// byte after the decoded bytes when dst has room for it. If src
// is rejected, or dst is too short, Fill returns 0 and the
// contents of dst are unspecified.
func (e *Encoding) Fill(dst, src []byte) int {
	n, _ := e.fill(dst, src)
	return n
}

func (e *Encoding) fill(dst, src []byte) (int, error) {
	w := writer{b: dst}
	m := machine[*writer]{out: &w, strict: e.strict}
	m.write(src)
	n, _, err := m.close()
	if err == nil && w.short {
		err = io.ErrShortBuffer
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Decode is like Fill, but reports why src was rejected.
//
// It returns ErrPadding or ErrCorrupt instead of a zero length,
// so an empty result and a rejected input can be told apart, and
// io.ErrShortBuffer if dst is shorter than Probe(src). On error
// dst is wiped.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	n, err := e.fill(dst, src)
	if err != nil {
		lenient.Wipe(dst)
		return 0, err
	}
	return n, nil
}

// DecodeString decodes src.
//
// It returns exactly the decoded bytes, or ErrPadding or
// ErrCorrupt if src is rejected.
func (e *Encoding) DecodeString(src string) ([]byte, error) {
	b := []byte(src)
	dst := make([]byte, e.Probe(b))
	n, err := e.Decode(dst, b)
	if err != nil {
		return nil, err
	}
	return dst[:n:n], nil
}

// Probe calls StdEncoding.Probe.
func Probe(src []byte) int {
	return StdEncoding.Probe(src)
}

// Fill calls StdEncoding.Fill.
func Fill(dst, src []byte) int {
	return StdEncoding.Fill(dst, src)
}
