package schoenmakers

import (
	"crypto/cipher"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/transcript"
)

// VoteProof is a 1-of-2 Chaum-Pedersen disjunctive proof that an
// encrypted vote U = G*(s+v) commits to v in {0, 1}, without revealing
// which. It proves knowledge of an opening for exactly one of the two
// branches (v=0, v=1) while the other branch's transcript is
// simulated, and binds both branches together with a single challenge
// c = d0 + d1.
type VoteProof struct {
	A0, A1, B0, B1 kyber.Point
	D0, D1         kyber.Scalar
	R0, R1         kyber.Scalar
}

// Verify checks the disjunctive proof against the dealer's first
// coefficient commitment c0 (the base the vote's secret is shared
// against) and the encrypted vote.
func (vp *VoteProof) Verify(suite kyber.Suite, G, H, encryptedVote, c0 kyber.Point) bool {
	t := transcript.New(suite, []byte("schoenmakers/vote"))
	t.AppendPoint(encryptedVote)
	t.AppendPoint(c0)
	t.AppendPoint(vp.A0)
	t.AppendPoint(vp.B0)
	t.AppendPoint(vp.A1)
	t.AppendPoint(vp.B1)
	c := t.Challenge()

	sum := suite.Scalar().Add(vp.D0, vp.D1)
	if !c.Equal(sum) {
		return false
	}

	a0 := suite.Point().Add(suite.Point().Mul(vp.R0, H), suite.Point().Mul(vp.D0, c0))
	a1 := suite.Point().Add(suite.Point().Mul(vp.R1, H), suite.Point().Mul(vp.D1, c0))
	b0 := suite.Point().Add(suite.Point().Mul(vp.R0, G), suite.Point().Mul(vp.D0, encryptedVote))
	uMinusG := suite.Point().Sub(encryptedVote, G)
	b1 := suite.Point().Add(suite.Point().Mul(vp.R1, G), suite.Point().Mul(vp.D1, uMinusG))

	return vp.A0.Equal(a0) && vp.A1.Equal(a1) && vp.B0.Equal(b0) && vp.B1.Equal(b1)
}

// Voter wraps a Dealer: its vote's secret s is secret-shared among
// the n tallying parties exactly like any other PVSS secret, with an
// additional disjunctive proof that the encrypted vote G*(s+v) carries
// v in {0, 1}.
type Voter struct {
	dealer *Dealer
	G      kyber.Point

	vote          kyber.Scalar
	encryptedVote kyber.Point
}

// NewVoter constructs a Voter sharing against H with the given parties'
// public keys.
func NewVoter(suite kyber.Suite, G, H kyber.Point, n, t int, publicKeys []kyber.Point) (*Voter, error) {
	dealer, err := NewDealer(suite, H, n, t, publicKeys)
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
	Commitments     []kyber.Point
	EncryptedVote   kyber.Point
	VoteProof       *VoteProof
}

// Vote shares a fresh random secret s, encrypts choice (false=0,
// true=1) as U = G*(s+v), and proves both the share-correctness and
// the vote's binary-ness.
func (v *Voter) Vote(rand cipher.Stream, choice bool) (*VoteResult, error) {
	s := v.dealer.suite.Scalar().Pick(rand)

	encShares, dealerProof, commitments, err := v.dealer.DealSecret(rand, s)
	if err != nil {
		return nil, err
	}

	c0 := commitments[0]
	v.generateVote(s, choice)

	voteProof, err := v.dleqVote(rand, c0, s)
	if err != nil {
		return nil, err
	}

	return &VoteResult{
		EncryptedShares: encShares,
		DealerProof:     dealerProof,
		Commitments:     commitments,
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
// challenge is known.
func (v *Voter) dleqVote(rand cipher.Stream, c0 kyber.Point, s kyber.Scalar) (*VoteProof, error) {
	if v.vote == nil || v.encryptedVote == nil {
		return nil, errs.UninitializedValue("voter.vote/encrypted_vote")
	}
	suite := v.dealer.suite
	G, H := v.G, v.dealer.H
	U := v.encryptedVote

	dSim := suite.Scalar().Pick(rand)  // challenge for the simulated (non-matching) branch
	rSim := suite.Scalar().Pick(rand)  // response for the simulated branch
	wReal := suite.Scalar().Pick(rand) // randomizer for the real branch, completed below

	// The "a" term has the same shape (H*r + c0*d) regardless of branch.
	aSim := suite.Point().Add(suite.Point().Mul(rSim, H), suite.Point().Mul(dSim, c0))
	// The real branch's precommit is simply w*H / w*G: for the branch
	// matching v, U - v*G = G*s, so the verifier's d*(U - v*G) and d*c0
	// terms cancel against the -s*d part of the response r = w - s*d.
	aReal := suite.Point().Mul(wReal, H)
	bReal := suite.Point().Mul(wReal, G)

	isOne := v.vote.Equal(suite.Scalar().One())

	var proof *VoteProof
	if isOne {
		// Simulated branch is index 0: b0 = G*rSim + U*dSim.
		bSim := suite.Point().Add(suite.Point().Mul(rSim, G), suite.Point().Mul(dSim, U))
		proof = &VoteProof{
			A0: aSim, B0: bSim, D0: dSim, R0: rSim,
			A1: aReal, B1: bReal,
		}
	} else {
		// Simulated branch is index 1: b1 = G*rSim + (U-G)*dSim.
		uMinusG := suite.Point().Sub(U, G)
		bSim := suite.Point().Add(suite.Point().Mul(rSim, G), suite.Point().Mul(dSim, uMinusG))
		proof = &VoteProof{
			A1: aSim, B1: bSim, D1: dSim, R1: rSim,
			A0: aReal, B0: bReal,
		}
	}

	t := transcript.New(suite, []byte("schoenmakers/vote"))
	t.AppendPoint(U)
	t.AppendPoint(c0)
	t.AppendPoint(proof.A0)
	t.AppendPoint(proof.B0)
	t.AppendPoint(proof.A1)
	t.AppendPoint(proof.B1)
	c := t.Challenge()

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
