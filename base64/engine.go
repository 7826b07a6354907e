package base64

import "bytes"

// sink receives the bytes committed by a machine.
//
// put is called with consecutive indices starting at zero.
// terminate asks for a zero byte at index k, which may be one or
// two past the last committed byte.
type sink interface {
	put(j int, b byte)
	terminate(k int)
}

// counter is the probe-mode sink. It only lets the machine count.
type counter struct{}

func (counter) put(int, byte) {}
func (counter) terminate(int) {}

// writer is the fill-mode sink. Bytes that do not fit are
// dropped and recorded in short.
type writer struct {
	b     []byte
	short bool
}

func (w *writer) put(j int, b byte) {
	if j >= len(w.b) {
		w.short = true
		return
	}
	w.b[j] = b
}

func (w *writer) terminate(k int) {
	// A zero-capacity buffer is valid when Probe reported 0.
	if k < len(w.b) {
		w.b[k] = 0
	}
}

// queue is the streaming sink.
type queue struct {
	bytes.Buffer
}

func (q *queue) put(_ int, b byte) { q.WriteByte(b) }
func (q *queue) terminate(int)     {}

// machine is the forgiving decode state machine.
//
// It consumes input in any number of write calls and is finished
// by close. The same machine drives probe, fill and streaming
// decodes; only the sink differs.
type machine[S sink] struct {
	out    S
	strict bool // fail on Invalid bytes

	i   int  // accepted symbols mod 4
	acc byte // high bits of the byte being assembled
	j   int  // committed bytes
	n   int  // accepted symbols
	pad bool // last byte was padChar
	err error
}

func (m *machine[S]) emit(b byte) {
	m.out.put(m.j, b)
	m.j++
}

// write feeds src to the machine. Once write returns an error
// the machine is dead and every later call returns that error.
func (m *machine[S]) write(src []byte) error {
	if m.err != nil {
		return m.err
	}
	for _, c := range src {
		if c == padChar {
			// A group needs two symbols before any padding. A run
			// of padding in position 1 is always followed by a
			// symbol or by the end of the input, and both fail,
			// so fail on the first one.
			if m.i == 1 {
				m.err = ErrPadding
				return m.err
			}
			m.pad = true
			continue
		}
		m.pad = false

		v := revTable[c]
		switch v {
		case ignSpace:
			continue
		case ignInvalid:
			if m.strict {
				m.err = ErrCorrupt
				return m.err
			}
			continue
		}

		switch m.i {
		case 0:
			m.acc = v << 2
		case 1:
			m.emit(m.acc | v>>4)
			m.acc = (v & 0x0f) << 4
		case 2:
			m.emit(m.acc | v>>2)
			m.acc = (v & 0x03) << 6
		case 3:
			m.emit(m.acc | v)
			m.acc = 0
		}
		m.i = (m.i + 1) & 3
		m.n++
	}
	return nil
}

// close finishes the decode. It returns the number of committed
// bytes j and the trailing cursor k, which counts one more byte
// when the input ends with padding after the second symbol of a
// group.
func (m *machine[S]) close() (j, k int, err error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	k = m.j
	if m.pad {
		switch m.i {
		case 2:
			k++
			fallthrough
		case 3:
			m.out.terminate(k)
		}
	}
	m.out.terminate(m.j)
	return m.j, k, nil
}

// capacity is the probe-mode result for a closed machine.
func (m *machine[S]) capacity(k int) int {
	if m.n == 0 {
		return 0
	}
	return k + 1
}
