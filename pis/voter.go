package pis

import (
	"crypto/cipher"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/transcript"
)

// VoteProof is a 1-of-2 Chaum-Pedersen disjunctive proof that an
// encrypted vote U = G*(s+v) commits to v in {0, 1}. Unlike the
// Schoenmakers variant it is checked against PK0 and the dealer's own
// PK0-encrypted share y0 (slot 0 of the n+1-length share array)
// instead of a separate commitment: Π_S's compact dealer proof never
// publishes coefficient commitments, so the vote proof reuses the
// share ciphertext that already exists for that purpose. C records the
// joint challenge the proof was built under; Verify always recomputes
// it from the transcript rather than trusting the stored value.
type VoteProof struct {
	A0, A1, B0, B1 kyber.Point
	C              kyber.Scalar
	D0, D1         kyber.Scalar
	R0, R1         kyber.Scalar
}

// Verify checks the disjunctive proof against PK0 and y0 (the dealer's
// own encrypted share of this ballot, equal to PK0^s).
func (vp *VoteProof) Verify(suite kyber.Suite, G, PK0, encryptedVote, y0 kyber.Point) bool {
	t := transcript.New(suite, []byte("pis/vote"))
	t.AppendPoint(encryptedVote)
	t.AppendPoint(y0)
	t.AppendPoint(vp.A0)
	t.AppendPoint(vp.B0)
	t.AppendPoint(vp.A1)
	t.AppendPoint(vp.B1)
	c := t.Challenge()

	if !c.Equal(suite.Scalar().Add(vp.D0, vp.D1)) {
		return false
	}

	a0 := suite.Point().Add(suite.Point().Mul(vp.R0, PK0), suite.Point().Mul(vp.D0, y0))
	a1 := suite.Point().Add(suite.Point().Mul(vp.R1, PK0), suite.Point().Mul(vp.D1, y0))
	b0 := suite.Point().Add(suite.Point().Mul(vp.R0, G), suite.Point().Mul(vp.D0, encryptedVote))
	uMinusG := suite.Point().Sub(encryptedVote, G)
	b1 := suite.Point().Add(suite.Point().Mul(vp.R1, G), suite.Point().Mul(vp.D1, uMinusG))

	return vp.A0.Equal(a0) && vp.A1.Equal(a1) && vp.B0.Equal(b0) && vp.B1.Equal(b1)
}

// Voter wraps a Dealer: its vote's secret s is secret-shared among the
// n tallying parties plus the fixed PK0 escrow slot, with an
// additional disjunctive proof that the encrypted vote G*(s+v) carries
// v in {0, 1}.
type Voter struct {
	dealer *Dealer
	G      kyber.Point

	vote          kyber.Scalar
	encryptedVote kyber.Point
}

// NewVoter constructs a Voter sharing against PK0 and the given
// parties' public keys.
func NewVoter(suite kyber.Suite, G, PK0 kyber.Point, n, t int, publicKeys []kyber.Point) (*Voter, error) {
	dealer, err := NewDealer(suite, PK0, n, t, publicKeys)
	if err != nil {
		return nil, err
	}
	return &Voter{dealer: dealer, G: G}, nil
}

// VoteResult bundles everything a Voter publishes to the bulletin
// board for a single ballot.
type VoteResult struct {
	EncryptedShares []kyber.Point
	DealerProof     *DealerProof
	EncryptedVote   kyber.Point
	VoteProof       *VoteProof
}

// Vote shares a fresh random secret s, encrypts choice (false=0,
// true=1) as U = G*(s+v), and proves both the share-correctness and
// the vote's binary-ness.
func (v *Voter) Vote(rand cipher.Stream, choice bool) (*VoteResult, error) {
	s := v.dealer.suite.Scalar().Pick(rand)

	encShares, dealerProof, err := v.dealer.DealSecret(rand, s)
	if err != nil {
		return nil, err
	}

	y0 := encShares[0]
	v.generateVote(s, choice)

	voteProof, err := v.dleqVote(rand, y0, s)
	if err != nil {
		return nil, err
	}

	return &VoteResult{
		EncryptedShares: encShares,
		DealerProof:     dealerProof,
		EncryptedVote:   v.encryptedVote,
		VoteProof:       voteProof,
	}, nil
}

func (v *Voter) generateVote(s kyber.Scalar, choice bool) {
	suite := v.dealer.suite
	voteVal := suite.Scalar().Zero()
	if choice {
		voteVal = suite.Scalar().One()
	}
	v.vote = voteVal
	sum := suite.Scalar().Add(s, voteVal)
	v.encryptedVote = suite.Point().Mul(sum, v.G)
}

// dleqVote builds the disjunctive proof, simulating the branch that
// does not match v and completing the real branch once the joint
// challenge is known. Identical construction to the Schoenmakers
// variant's voter, with PK0 in place of H.
func (v *Voter) dleqVote(rand cipher.Stream, y0 kyber.Point, s kyber.Scalar) (*VoteProof, error) {
	if v.vote == nil || v.encryptedVote == nil {
		return nil, errs.UninitializedValue("voter.vote/encrypted_vote")
	}
	suite := v.dealer.suite
	G, PK0 := v.G, v.dealer.PK0
	U := v.encryptedVote

	dSim := suite.Scalar().Pick(rand)
	rSim := suite.Scalar().Pick(rand)
	wReal := suite.Scalar().Pick(rand)

	aSim := suite.Point().Add(suite.Point().Mul(rSim, PK0), suite.Point().Mul(dSim, y0))
	aReal := suite.Point().Mul(wReal, PK0)
	bReal := suite.Point().Mul(wReal, G)

	isOne := v.vote.Equal(suite.Scalar().One())

	var proof *VoteProof
	if isOne {
		bSim := suite.Point().Add(suite.Point().Mul(rSim, G), suite.Point().Mul(dSim, U))
		proof = &VoteProof{
			A0: aSim, B0: bSim, D0: dSim, R0: rSim,
			A1: aReal, B1: bReal,
		}
	} else {
		uMinusG := suite.Point().Sub(U, G)
		bSim := suite.Point().Add(suite.Point().Mul(rSim, G), suite.Point().Mul(dSim, uMinusG))
		proof = &VoteProof{
			A1: aSim, B1: bSim, D1: dSim, R1: rSim,
			A0: aReal, B0: bReal,
		}
	}

	t := transcript.New(suite, []byte("pis/vote"))
	t.AppendPoint(U)
	t.AppendPoint(y0)
	t.AppendPoint(proof.A0)
	t.AppendPoint(proof.B0)
	t.AppendPoint(proof.A1)
	t.AppendPoint(proof.B1)
	c := t.Challenge()
	proof.C = c

	dReal := suite.Scalar().Sub(c, dSim)
	rReal := suite.Scalar().Sub(wReal, suite.Scalar().Mul(s, dReal))

	if isOne {
		proof.D1 = dReal
		proof.R1 = rReal
	} else {
		proof.D0 = dReal
		proof.R0 = rReal
	}

	return proof, nil
}
