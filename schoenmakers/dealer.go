// Package schoenmakers implements the Schoenmakers publicly verifiable
// secret sharing scheme: polynomial coefficients are committed to in
// the group, and dealer/party correctness proofs are standard
// Fiat-Shamir dlog-equality arguments over those commitments.
package schoenmakers

import (
	"crypto/cipher"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/transcript"
	"github.com/KULeuven-COSIC/ppvss-evoting/share"
)

// DealerProof is the dealer's Fiat-Shamir proof of correct polynomial
// evaluation: a single challenge d and a response z_i per party.
type DealerProof struct {
	D kyber.Scalar
	Z []kyber.Scalar
}

// Dealer distributes a secret among n parties under threshold t using
// a degree-t polynomial committed to in the group generated by H.
type Dealer struct {
	suite      kyber.Suite
	H          kyber.Point
	N, T       int
	PublicKeys []kyber.Point
	secret     kyber.Scalar
}

// NewDealer constructs a Dealer for n parties given their public keys,
// verifying the count matches n.
func NewDealer(suite kyber.Suite, H kyber.Point, n, t int, publicKeys []kyber.Point) (*Dealer, error) {
	if len(publicKeys) != n {
		return nil, errs.CountMismatch(n, "parties", len(publicKeys), "public keys")
	}
	return &Dealer{suite: suite, H: H, N: n, T: t, PublicKeys: publicKeys}, nil
}

// GenerateCommitments commits to f's t+1 coefficients against base H.
func (d *Dealer) generateCommitments(f *share.PriPoly) []kyber.Point {
	return f.Commit(d.H)
}

// DealSecret samples a fresh degree-t polynomial with constant term
// secret, commits to its coefficients, evaluates it for every party,
// encrypts the evaluations under each party's public key, and proves
// the encryption was done consistently.
func (d *Dealer) DealSecret(rand cipher.Stream, secret kyber.Scalar) ([]kyber.Point, *DealerProof, []kyber.Point, error) {
	f := share.SampleSetF0(d.suite, d.T, secret, rand)
	d.secret = secret

	commitments := d.generateCommitments(f)
	evals, encEvals := f.EvaluateMultiply(d.PublicKeys, 1)

	proof := d.dealSecretProof(rand, evals, encEvals)

	return encEvals, proof, commitments, nil
}

func (d *Dealer) dealSecretProof(rand cipher.Stream, evals []kyber.Scalar, encEvals []kyber.Point) *DealerProof {
	n := d.N
	randomizers := make([]kyber.Scalar, n)
	genEvals := make([]kyber.Point, n)
	a1 := make([]kyber.Point, n)
	a2 := make([]kyber.Point, n)
	for i := 0; i < n; i++ {
		randomizers[i] = d.suite.Scalar().Pick(rand)
		genEvals[i] = d.suite.Point().Mul(evals[i], d.H)
		a1[i] = d.suite.Point().Mul(randomizers[i], d.H)
		a2[i] = d.suite.Point().Mul(randomizers[i], d.PublicKeys[i])
	}

	t := transcript.New(d.suite, []byte("schoenmakers/dealer"))
	t.AppendPoints(genEvals...)
	t.AppendPoints(encEvals...)
	t.AppendPoints(a1...)
	t.AppendPoints(a2...)
	c := t.Challenge()

	z := make([]kyber.Scalar, n)
	tmp := d.suite.Scalar()
	for i := 0; i < n; i++ {
		z[i] = d.suite.Scalar().Sub(randomizers[i], tmp.Mul(c, evals[i]))
	}
	return &DealerProof{D: c, Z: z}
}
