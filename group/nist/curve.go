// Package nist implements a kyber.Group over the NIST P-256 elliptic
// curve, using Go's standard crypto/elliptic and math/big packages.
// P-256 has cofactor 1, so every compressed point that lies on the
// curve is a valid non-identity group element with no cofactor
// clearing required.
package nist

import (
	"crypto/cipher"
	"crypto/elliptic"
	"math/big"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/xof/blake3"
	"github.com/KULeuven-COSIC/ppvss-evoting/xof/keccak"
)

// curve is a kyber.Group backed by a crypto/elliptic.Curve.
type curve struct {
	ec    elliptic.Curve
	order *big.Int
}

// suite pairs curve with the BLAKE3 XOF used for this module's
// Fiat-Shamir transcripts.
type suite struct {
	*curve
}

func (suite) XOF(seed []byte) kyber.XOF { return blake3.New(seed) }

// NewBlakeSHA256P256 returns the P-256 suite used throughout this
// module: a prime-order group whose scalar field is the curve order,
// paired with the BLAKE3 XOF (see internal/transcript).
func NewBlakeSHA256P256() kyber.Suite {
	c := elliptic.P256()
	return suite{&curve{ec: c, order: new(big.Int).Set(c.Params().N)}}
}

// shakeSuite pairs curve with the Shake256 XOF, for deployments that
// prefer a NIST-approved transform over BLAKE3 for Fiat-Shamir.
type shakeSuite struct {
	*curve
}

func (shakeSuite) XOF(seed []byte) kyber.XOF { return keccak.New(seed) }
func (shakeSuite) String() string            { return "P256-SHAKE256" }

// NewShakeSHA256P256 returns the same P-256 group as
// NewBlakeSHA256P256, paired with the Shake256 XOF instead of BLAKE3.
func NewShakeSHA256P256() kyber.Suite {
	c := elliptic.P256()
	return shakeSuite{&curve{ec: c, order: new(big.Int).Set(c.Params().N)}}
}

// Order exposes the scalar field's modulus for callers that need raw
// big-integer arithmetic outside the group abstraction (e.g. the
// schoenmakers verifier's saferith-backed power table).
func (g *curve) Order() *big.Int { return new(big.Int).Set(g.order) }

func (g *curve) String() string { return "P256" }

func (g *curve) ScalarLen() int { return (g.order.BitLen() + 7) / 8 }

func (g *curve) Scalar() kyber.Scalar { return g.newScalar() }

func (g *curve) PointLen() int { return 1 + (g.ec.Params().BitSize+7)/8 }

func (g *curve) Point() kyber.Point { return g.newPoint() }

// pickScalar returns a uniformly random scalar in [0, order).
func (g *curve) pickScalar(rand cipher.Stream) *big.Int {
	k := g.Scalar().Pick(rand).(*scalar)
	return new(big.Int).Set(&k.i.V)
}
