// Package pis implements the compact Π_S publicly verifiable secret
// sharing variant: instead of a per-party response scalar, the dealer
// sends a single degree-t response polynomial, shrinking the proof
// from O(n) group/scalar pairs to O(t). An extra fixed key PK0 takes
// the position Schoenmakers' H occupies, doubling as the first slot
// (index 0) of the encrypted-share array so the disjunctive vote proof
// can reuse that slot's ciphertext directly instead of a separate
// commitment.
package pis

import (
	"crypto/cipher"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/transcript"
	"github.com/KULeuven-COSIC/ppvss-evoting/share"
)

// DealerProof is the compact Fiat-Shamir proof: one challenge and one
// response polynomial, verified jointly against all n+1 encrypted
// shares (index 0 under PK0, indices 1..n under the real parties).
type DealerProof struct {
	D kyber.Scalar
	Z *share.PriPoly
}

// Dealer distributes a secret among n parties under threshold t. PK0
// is a fixed escrow key shared by every ballot on the board; it is
// evaluated at x=0 and folded into the same encrypted-share array and
// proof as the n real parties (x=1..n).
type Dealer struct {
	suite      kyber.Suite
	PK0        kyber.Point
	N, T       int
	PublicKeys []kyber.Point
	secret     kyber.Scalar
}

// NewDealer constructs a Dealer for n parties plus the fixed PK0 slot.
func NewDealer(suite kyber.Suite, PK0 kyber.Point, n, t int, publicKeys []kyber.Point) (*Dealer, error) {
	if len(publicKeys) != n {
		return nil, errs.CountMismatch(n, "parties", len(publicKeys), "public keys")
	}
	return &Dealer{suite: suite, PK0: PK0, N: n, T: t, PublicKeys: publicKeys}, nil
}

// allKeys returns the n+1 keys the joint proof runs over, PK0 first.
func (d *Dealer) allKeys() []kyber.Point {
	keys := make([]kyber.Point, 0, d.N+1)
	keys = append(keys, d.PK0)
	keys = append(keys, d.PublicKeys...)
	return keys
}

// DealSecret samples a fresh degree-t polynomial with constant term
// secret, encrypts its evaluation at x=0..n under PK0 and every
// party's public key, and proves the encryption was done consistently
// with a single compact DLEQ proof.
func (d *Dealer) DealSecret(rand cipher.Stream, secret kyber.Scalar) ([]kyber.Point, *DealerProof, error) {
	f := share.SampleSetF0(d.suite, d.T, secret, rand)
	d.secret = secret

	keys := d.allKeys()
	_, encShares := f.EvaluateMultiply(keys, 0)

	proof, err := d.dealSecretProof(rand, f, keys, encShares)
	if err != nil {
		return nil, nil, err
	}
	return encShares, proof, nil
}

func (d *Dealer) dealSecretProof(rand cipher.Stream, f *share.PriPoly, keys, encShares []kyber.Point) (*DealerProof, error) {
	w := share.Sample(d.suite, d.T, rand)
	_, a := w.EvaluateMultiply(keys, 0)

	t := transcript.New(d.suite, []byte("pis/dealer"))
	t.AppendPoints(encShares...)
	t.AppendPoints(a...)
	c := t.Challenge()

	z, err := f.MulSum(c, w)
	if err != nil {
		return nil, err
	}
	return &DealerProof{D: c, Z: z}, nil
}

// VerifyDealerProof re-derives the dealer's challenge over the n+1
// reconstructed commitments a_i = Z(i)*keys[i] - d*encShares[i] and
// checks it against the proof.
func VerifyDealerProof(suite kyber.Suite, keys, encShares []kyber.Point, proof *DealerProof) bool {
	if proof == nil || len(keys) != len(encShares) {
		return false
	}
	a := make([]kyber.Point, len(keys))
	for i, pk := range keys {
		zi := proof.Z.Evaluate(i)
		a[i] = suite.Point().Sub(
			suite.Point().Mul(zi, pk),
			suite.Point().Mul(proof.D, encShares[i]),
		)
	}

	t := transcript.New(suite, []byte("pis/dealer"))
	t.AppendPoints(encShares...)
	t.AppendPoints(a...)
	return proof.D.Equal(t.Challenge())
}
