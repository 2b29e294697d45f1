package nist

import (
	"crypto/cipher"
	"io"
	"math/big"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/nist"
	"github.com/KULeuven-COSIC/ppvss-evoting/random"
)

// scalar is a kyber.Scalar backed by a nist.Int reduced modulo the
// curve's group order.
type scalar struct {
	i nist.Int
	g *curve
}

func (g *curve) newScalar() *scalar {
	s := &scalar{g: g}
	s.i.Init64(0, g.order)
	return s
}

func (s *scalar) String() string {
	b, _ := s.MarshalBinary()
	return hexString(b)
}

func (s *scalar) MarshalSize() int { return s.i.MarshalSize() }

func (s *scalar) MarshalBinary() ([]byte, error) { return s.i.MarshalBinary() }

func (s *scalar) MarshalTo(w io.Writer) (int, error) {
	buf, err := s.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

func (s *scalar) UnmarshalBinary(buf []byte) error {
	return s.i.UnmarshalBinary(buf)
}

func (s *scalar) UnmarshalFrom(r io.Reader) (int, error) {
	buf := make([]byte, s.MarshalSize())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return n, err
	}
	return n, s.UnmarshalBinary(buf)
}

func (s *scalar) Equal(s2 kyber.Scalar) bool {
	return s.i.Equal(&s2.(*scalar).i)
}

func (s *scalar) Set(a kyber.Scalar) kyber.Scalar {
	s.i = *a.(*scalar).i.Clone()
	s.g = a.(*scalar).g
	return s
}

func (s *scalar) Clone() kyber.Scalar {
	c := &scalar{g: s.g}
	c.i = *s.i.Clone()
	return c
}

func (s *scalar) SetInt64(v int64) kyber.Scalar {
	s.i.Init64(v, s.g.order)
	return s
}

func (s *scalar) Zero() kyber.Scalar {
	return s.SetInt64(0)
}

func (s *scalar) One() kyber.Scalar {
	return s.SetInt64(1)
}

func (s *scalar) Add(a, b kyber.Scalar) kyber.Scalar {
	s.i.Add(&a.(*scalar).i, &b.(*scalar).i)
	return s
}

func (s *scalar) Sub(a, b kyber.Scalar) kyber.Scalar {
	av, bv := &a.(*scalar).i, &b.(*scalar).i
	var t big.Int
	t.Sub(&av.V, &bv.V)
	t.Mod(&t, s.g.order)
	s.i.M = s.g.order
	s.i.V = t
	return s
}

func (s *scalar) Neg(a kyber.Scalar) kyber.Scalar {
	return s.Sub(s.g.Scalar().Zero(), a)
}

func (s *scalar) Mul(a, b kyber.Scalar) kyber.Scalar {
	av, bv := &a.(*scalar).i, &b.(*scalar).i
	var t big.Int
	t.Mul(&av.V, &bv.V)
	t.Mod(&t, s.g.order)
	s.i.M = s.g.order
	s.i.V = t
	return s
}

func (s *scalar) Inv(a kyber.Scalar) kyber.Scalar {
	var t big.Int
	t.ModInverse(&a.(*scalar).i.V, s.g.order)
	s.i.M = s.g.order
	s.i.V = t
	return s
}

func (s *scalar) Div(a, b kyber.Scalar) kyber.Scalar {
	inv := s.g.Scalar().Inv(b)
	return s.Mul(a, inv)
}

func (s *scalar) Pick(rand cipher.Stream) kyber.Scalar {
	buf := random.Bits(uint(s.g.order.BitLen())+128, false, rand)
	var t big.Int
	t.SetBytes(buf)
	t.Mod(&t, s.g.order)
	s.i.M = s.g.order
	s.i.V = t
	return s
}

func (s *scalar) SetBytes(buf []byte) kyber.Scalar {
	var t big.Int
	t.SetBytes(buf)
	t.Mod(&t, s.g.order)
	s.i.M = s.g.order
	s.i.V = t
	return s
}

func (s *scalar) Bytes() []byte {
	return s.i.V.Bytes()
}

func hexString(b []byte) string {
	const hexd = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexd[c>>4]
		out[i*2+1] = hexd[c&0xf]
	}
	return string(out)
}
