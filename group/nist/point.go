package nist

import (
	"crypto/cipher"
	"crypto/elliptic"
	"errors"
	"io"
	"math/big"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/random"
)

// point is a kyber.Point backed by an affine (x, y) pair on the curve.
// The identity element is represented as (0, 0), matching the
// convention crypto/elliptic's Add/Double/ScalarMult use internally.
type point struct {
	x, y *big.Int
	g    *curve
}

func (g *curve) newPoint() *point {
	return &point{x: new(big.Int), y: new(big.Int), g: g}
}

func (p *point) String() string {
	b, _ := p.MarshalBinary()
	return hexString(b)
}

func (p *point) MarshalSize() int { return p.g.PointLen() }

func (p *point) MarshalBinary() ([]byte, error) {
	if p.x.Sign() == 0 && p.y.Sign() == 0 {
		// Identity: encode as the all-zero point, distinguishable
		// from any valid compressed point since those always start
		// with 0x02 or 0x03.
		return make([]byte, p.MarshalSize()), nil
	}
	return elliptic.MarshalCompressed(p.g.ec, p.x, p.y), nil
}

func (p *point) MarshalTo(w io.Writer) (int, error) {
	buf, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

func (p *point) UnmarshalBinary(buf []byte) error {
	zero := true
	for _, b := range buf {
		if b != 0 {
			zero = false
			break
		}
	}
	if zero {
		p.x.SetInt64(0)
		p.y.SetInt64(0)
		return nil
	}
	x, y := elliptic.UnmarshalCompressed(p.g.ec, buf)
	if x == nil {
		return errors.New("nist: invalid compressed point encoding")
	}
	p.x, p.y = x, y
	return nil
}

func (p *point) UnmarshalFrom(r io.Reader) (int, error) {
	buf := make([]byte, p.MarshalSize())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return n, err
	}
	return n, p.UnmarshalBinary(buf)
}

func (p *point) Equal(p2 kyber.Point) bool {
	o := p2.(*point)
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0
}

func (p *point) Null() kyber.Point {
	p.x.SetInt64(0)
	p.y.SetInt64(0)
	return p
}

func (p *point) Base() kyber.Point {
	params := p.g.ec.Params()
	p.x = new(big.Int).Set(params.Gx)
	p.y = new(big.Int).Set(params.Gy)
	return p
}

func (p *point) Set(q kyber.Point) kyber.Point {
	o := q.(*point)
	p.x = new(big.Int).Set(o.x)
	p.y = new(big.Int).Set(o.y)
	p.g = o.g
	return p
}

func (p *point) Clone() kyber.Point {
	return &point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y), g: p.g}
}

// EmbedLen returns how many data bytes Embed can reliably carry: the
// field width in bytes minus two, one low byte used as a length marker
// and one high byte left random so each retry tries a fresh x.
func (p *point) EmbedLen() int {
	return (p.g.ec.Params().BitSize)/8 - 2
}

// Embed encodes up to EmbedLen() bytes of data into a curve point by
// trying successive candidate x-coordinates until one lies on the
// curve, the classic try-and-increment construction.
func (p *point) Embed(data []byte, rand cipher.Stream) kyber.Point {
	params := p.g.ec.Params()
	l := p.EmbedLen()
	dl := len(data)
	if dl > l {
		dl = l
	}

	for {
		buf := random.Bits(uint(params.BitSize), false, rand)
		if data != nil {
			buf[len(buf)-1] = byte(dl)
			copy(buf[len(buf)-dl-1:len(buf)-1], data)
		}
		x := new(big.Int).SetBytes(buf)
		x.Mod(x, params.P)
		y2 := new(big.Int)
		y2.Mul(x, x)
		y2.Mul(y2, x)
		threeX := new(big.Int).Mul(x, big.NewInt(3))
		y2.Sub(y2, threeX)
		y2.Add(y2, params.B)
		y2.Mod(y2, params.P)
		y := new(big.Int).ModSqrt(y2, params.P)
		if y == nil {
			continue
		}
		p.x, p.y = x, y
		return p
	}
}

// Data extracts the payload embedded via Embed.
func (p *point) Data() ([]byte, error) {
	params := p.g.ec.Params()
	buf := p.x.Bytes()
	pad := (params.BitSize+7)/8 - len(buf)
	if pad > 0 {
		buf = append(make([]byte, pad), buf...)
	}
	dl := int(buf[len(buf)-1])
	l := p.EmbedLen()
	if dl > l {
		return nil, errors.New("nist: invalid embedded data length")
	}
	return buf[len(buf)-dl-1 : len(buf)-1], nil
}

func (p *point) Pick(rand cipher.Stream) kyber.Point {
	return p.Embed(nil, rand)
}

func (p *point) Add(a, b kyber.Point) kyber.Point {
	av, bv := a.(*point), b.(*point)
	p.x, p.y = p.g.ec.Add(av.x, av.y, bv.x, bv.y)
	return p
}

func (p *point) Sub(a, b kyber.Point) kyber.Point {
	bv := b.(*point)
	negY := new(big.Int).Neg(bv.y)
	negY.Mod(negY, p.g.ec.Params().P)
	return p.Add(a, &point{x: bv.x, y: negY, g: p.g})
}

func (p *point) Neg(a kyber.Point) kyber.Point {
	av := a.(*point)
	negY := new(big.Int).Neg(av.y)
	negY.Mod(negY, p.g.ec.Params().P)
	p.x = new(big.Int).Set(av.x)
	p.y = negY
	return p
}

func (p *point) Mul(s kyber.Scalar, q kyber.Point) kyber.Point {
	sv := s.(*scalar)
	k := sv.i.V.Bytes()
	if q == nil {
		p.x, p.y = p.g.ec.ScalarBaseMult(k)
		return p
	}
	qv := q.(*point)
	p.x, p.y = p.g.ec.ScalarMult(qv.x, qv.y, k)
	return p
}
