package base64

// Class is the category of an input byte.
type Class uint8

const (
	// Symbol is one of the 64 characters of the standard alphabet.
	Symbol Class = iota
	// Space is '\t', '\n', '\r' or ' '.
	Space
	// Invalid is every other byte, including the padding
	// character.
	Invalid
)

func (c Class) String() string {
	switch c {
	case Symbol:
		return "symbol"
	case Space:
		return "space"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

const (
	padChar = '='

	// revTable sentinels. Both are outside [0, 63].
	ignSpace   = 0xfe
	ignInvalid = 0xff
)

// revTable maps every byte to its 6-bit value or to one of the
// ignSpace and ignInvalid sentinels.
var revTable = newRevTable()

func newRevTable() (t [256]byte) {
	for i := range t {
		t[i] = stdRevLookup(uint(i))
	}
	for _, c := range []byte{'\t', '\n', '\r', ' '} {
		t[c] = ignSpace
	}
	return t
}

// Classify reports how the forgiving decoder treats c.
//
// If class is Symbol, v is the 6-bit value of c. Otherwise v is
// zero.
func Classify(c byte) (v byte, class Class) {
	switch v = revTable[c]; v {
	case ignSpace:
		return 0, Space
	case ignInvalid:
		return 0, Invalid
	}
	return v, Symbol
}

// stdRevLookup converts the base64 character c to its 6-bit
// binary value.
//
// If the character is invalid stdRevLookup returns 0xff.
func stdRevLookup(c uint) byte {
	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z'
	//     s = -71
	// case c >= '0' && c <= '9'
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)

	// s is zero only for characters outside the alphabet. Keep
	// [8:0] of s+c and saturate to 0xff when s == 0.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
