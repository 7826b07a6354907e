package base64

import "io"

type decoder struct {
	m   machine[*queue]
	out queue // decoded bytes not yet returned
	r   io.Reader
	err error
	buf [1024]byte
}

// NewDecoder returns a forgiving base64 stream decoder.
//
// Data read from the returned Reader is the same as Fill would
// produce for everything read from r. When the input is rejected
// Read returns ErrPadding or ErrCorrupt; bytes decoded from the
// chunk containing the offending byte are dropped, but bytes
// returned before that are not taken back.
func NewDecoder(enc *Encoding, r io.Reader) io.Reader {
	d := &decoder{r: r}
	d.m.out = &d.out
	d.m.strict = enc.strict
	return d
}

func (d *decoder) Read(p []byte) (n int, err error) {
	// Refill until there is output or the input is done.
	for d.out.Len() == 0 && d.err == nil {
		nr, rerr := d.r.Read(d.buf[:])
		if nr > 0 {
			if d.err = d.m.write(d.buf[:nr]); d.err != nil {
				d.out.Reset()
				break
			}
		}
		switch {
		case rerr == io.EOF:
			if _, _, d.err = d.m.close(); d.err == nil {
				d.err = io.EOF
			}
		case rerr != nil:
			d.err = rerr
		}
	}
	if d.out.Len() > 0 {
		return d.out.Read(p)
	}
	return 0, d.err
}
