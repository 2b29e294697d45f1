// Package share implements the degree-t polynomials this module's two
// PVSS variants secret-share over, plus Lagrange reconstruction.
package share

import (
	"crypto/cipher"
	"errors"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
)

// PriPoly is a degree-t polynomial over a group's scalar field,
// coefficients[0] being the shared secret.
type PriPoly struct {
	g      kyber.Group
	coeffs []kyber.Scalar
}

// Sample returns a fresh random polynomial of the given degree.
func Sample(g kyber.Group, degree int, rand cipher.Stream) *PriPoly {
	coeffs := make([]kyber.Scalar, degree+1)
	for i := range coeffs {
		coeffs[i] = g.Scalar().Pick(rand)
	}
	return &PriPoly{g, coeffs}
}

// SampleSetF0 returns a fresh random polynomial of the given degree
// whose constant term is fixed to f0.
func SampleSetF0(g kyber.Group, degree int, f0 kyber.Scalar, rand cipher.Stream) *PriPoly {
	p := Sample(g, degree, rand)
	p.coeffs[0] = f0
	return p
}

// FromCoeffs wraps an existing coefficient slice as a PriPoly, for
// reconstructing a polynomial decoded off the wire.
func FromCoeffs(g kyber.Group, coeffs []kyber.Scalar) *PriPoly {
	return &PriPoly{g, coeffs}
}

// Coeffs returns the polynomial's coefficients in ascending order.
func (p *PriPoly) Coeffs() []kyber.Scalar { return p.coeffs }

// Degree returns the polynomial's degree.
func (p *PriPoly) Degree() int { return len(p.coeffs) - 1 }

// Secret returns the constant term p(0).
func (p *PriPoly) Secret() kyber.Scalar { return p.coeffs[0] }

// Coeff returns the j-th coefficient.
func (p *PriPoly) Coeff(j int) kyber.Scalar { return p.coeffs[j] }

// Evaluate computes p(x) via the power-table construction the dealer
// uses to derive per-party challenge contributions: x_powers[0] = 1,
// x_powers[1] = x, x_powers[j] = x_powers[1] * x_powers[j-1].
func (p *PriPoly) Evaluate(x int) kyber.Scalar {
	xPowers := p.powers(x)
	acc := p.g.Scalar().Zero()
	term := p.g.Scalar()
	for j, c := range p.coeffs {
		acc.Add(acc, term.Mul(c, xPowers[j]))
	}
	return acc
}

func (p *PriPoly) powers(x int) []kyber.Scalar {
	n := len(p.coeffs)
	xPowers := make([]kyber.Scalar, n)
	xPowers[0] = p.g.Scalar().One()
	if n == 1 {
		return xPowers
	}
	xPowers[1] = p.g.Scalar().SetInt64(int64(x))
	for j := 2; j < n; j++ {
		xPowers[j] = p.g.Scalar().Mul(xPowers[1], xPowers[j-1])
	}
	return xPowers
}

// EvaluateMultiply evaluates p at x = i+baseIndex for every point in
// points and multiplies the resulting scalar into the matching point,
// returning both the raw scalar evaluations and the encrypted shares
// Yi = p(i+baseIndex)*points[i]. baseIndex is 1 for the Schoenmakers
// scheme (parties indexed from x=1) and 0 for the compact Π_S variant.
func (p *PriPoly) EvaluateMultiply(points []kyber.Point, baseIndex int) ([]kyber.Scalar, []kyber.Point) {
	evals := make([]kyber.Scalar, len(points))
	enc := make([]kyber.Point, len(points))
	for i, pt := range points {
		v := p.Evaluate(i + baseIndex)
		evals[i] = v
		enc[i] = p.g.Point().Mul(v, pt)
	}
	return evals, enc
}

// Commit multiplies each of p's coefficients into base b (or the
// standard base point if b is nil), returning the commitments used by
// the Schoenmakers variant's public verification.
func (p *PriPoly) Commit(b kyber.Point) []kyber.Point {
	commits := make([]kyber.Point, len(p.coeffs))
	for i, c := range p.coeffs {
		commits[i] = p.g.Point().Mul(c, b)
	}
	return commits
}

// Add returns the coefficient-wise sum of p and q.
func (p *PriPoly) Add(q *PriPoly) (*PriPoly, error) {
	if len(p.coeffs) != len(q.coeffs) {
		return nil, errors.New("share: mismatched polynomial degrees")
	}
	coeffs := make([]kyber.Scalar, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = p.g.Scalar().Add(p.coeffs[i], q.coeffs[i])
	}
	return &PriPoly{p.g, coeffs}, nil
}

// MulSum returns p*mulVal + q, coefficient-wise: the compact Π_S proof
// combines its secret polynomial and a random blinding polynomial this
// way (coefficients[i] = coefficients[i]*mulVal + q.coefficients[i]).
func (p *PriPoly) MulSum(mulVal kyber.Scalar, q *PriPoly) (*PriPoly, error) {
	if len(p.coeffs) != len(q.coeffs) {
		return nil, errors.New("share: mismatched polynomial degrees")
	}
	coeffs := make([]kyber.Scalar, len(p.coeffs))
	for i := range coeffs {
		coeffs[i] = p.g.Scalar().Add(p.g.Scalar().Mul(p.coeffs[i], mulVal), q.coeffs[i])
	}
	return &PriPoly{p.g, coeffs}, nil
}
