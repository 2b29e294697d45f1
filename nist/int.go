package nist

import (
	"errors"
	"math/big"
)

// Int is a big.Int reduced modulo M, with a configurable marshaled byte
// order. It backs the scalar field of group/nist's prime-order group.
type Int struct {
	V  big.Int
	M  *big.Int
	BO Endianness
}

// Init64 sets i to v mod modulo.
func (i *Int) Init64(v int64, modulo *big.Int) *Int {
	i.M = modulo
	i.V.SetInt64(v)
	i.V.Mod(&i.V, i.M)
	return i
}

// InitBytes sets i to the big-endian value of buff, mod modulo.
func (i *Int) InitBytes(buff []byte, modulo *big.Int) *Int {
	i.M = modulo
	i.V.SetBytes(buff)
	i.V.Mod(&i.V, i.M)
	return i
}

// NewInt returns a new Int initialized to v mod modulo.
func NewInt(v int64, modulo *big.Int) *Int {
	return new(Int).Init64(v, modulo)
}

// Clone returns an independent copy of i.
func (i *Int) Clone() *Int {
	n := &Int{M: i.M, BO: i.BO}
	n.V.Set(&i.V)
	return n
}

// Add sets i to a+b mod M and returns i.
func (i *Int) Add(a, b *Int) *Int {
	i.M = a.M
	i.V.Add(&a.V, &b.V)
	i.V.Mod(&i.V, i.M)
	return i
}

// Equal reports whether i and i2 hold the same value.
func (i *Int) Equal(i2 *Int) bool {
	return i.V.Cmp(&i2.V) == 0
}

// MarshalSize returns the byte length of the modulus, which every
// marshaled Int is padded or truncated to.
func (i *Int) MarshalSize() int {
	return (i.M.BitLen() + 7) / 8
}

// MarshalBinary encodes i to a fixed-length buffer in i.BO byte order.
func (i *Int) MarshalBinary() ([]byte, error) {
	l := i.MarshalSize()
	buf := make([]byte, l)
	b := i.V.Bytes()
	if len(b) > l {
		return nil, errors.New("nist: value too large for modulus width")
	}
	copy(buf[l-len(b):], b)
	if i.BO == LittleEndian {
		reverse(buf)
	}
	return buf, nil
}

// UnmarshalBinary decodes buf (in i.BO byte order) into i, reducing mod M.
func (i *Int) UnmarshalBinary(buf []byte) error {
	if i.M == nil {
		return errors.New("nist: modulus not set")
	}
	b := make([]byte, len(buf))
	copy(b, buf)
	if i.BO == LittleEndian {
		reverse(b)
	}
	i.V.SetBytes(b)
	i.V.Mod(&i.V, i.M)
	return nil
}

// LittleEndian returns i's value as little-endian bytes, clamped between
// min and max bytes long, regardless of the receiver's current BO setting.
func (i *Int) LittleEndian(min, max int) []byte {
	act := i.MarshalSize()
	l := act
	if l < min {
		l = min
	}
	if max > 0 && l > max {
		l = max
	}
	buf := make([]byte, l)
	b := i.V.Bytes()
	copy(buf, reversed(b))
	return buf
}

func reverse(b []byte) {
	for x, y := 0, len(b)-1; x < y; x, y = x+1, y-1 {
		b[x], b[y] = b[y], b[x]
	}
}

func reversed(b []byte) []byte {
	n := make([]byte, len(b))
	for x := 0; x < len(b); x++ {
		n[x] = b[len(b)-1-x]
	}
	return n
}
