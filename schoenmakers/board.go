package schoenmakers

import (
	"math/big"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/fanout"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/telemetry"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/transcript"
)

// ballot is one voter's complete, as-yet-unverified submission.
type ballot struct {
	valid           bool
	encryptedShares []kyber.Point
	shareProof      *DealerProof
	encryptedVote   kyber.Point
	voteValid       bool
	commitments     []kyber.Point
	voteProof       *VoteProof
}

// Board collects ballots from m voters and batch-verifies them before
// handing the tallying parties an aggregated view.
type Board struct {
	suite      kyber.Suite
	G, H       kyber.Point
	PublicKeys []kyber.Point
	N, T       int

	Parallel fanout.Parallel
	Log      telemetry.Logger

	ballots []*ballot
}

// NewBoard constructs an empty board for n parties with threshold t.
func NewBoard(suite kyber.Suite, G, H kyber.Point, publicKeys []kyber.Point, n, t int) *Board {
	return &Board{
		suite: suite, G: G, H: H, PublicKeys: publicKeys, N: n, T: t,
		Parallel: fanout.Default,
		Log:      telemetry.Default(),
	}
}

// IngestVote records one voter's ballot, initially unverified.
func (b *Board) IngestVote(r *VoteResult) {
	b.ballots = append(b.ballots, &ballot{
		encryptedShares: r.EncryptedShares,
		shareProof:      r.DealerProof,
		encryptedVote:   r.EncryptedVote,
		commitments:     r.Commitments,
		voteProof:       r.VoteProof,
	})
}

// VerifyEncryptedShares batch-verifies every ballot's dealer proof,
// marking each ballot valid or invalid in place.
func (b *Board) VerifyEncryptedShares() {
	bs := b.ballots
	b.Parallel(len(bs), func(i int) {
		bal := bs[i]
		bs[i].valid = verifyDealerProof(b.suite, b.H, b.PublicKeys, bal.commitments,
			bal.encryptedShares, bal.shareProof, b.N, b.T)
		if !bs[i].valid {
			b.Log.Warnf("ballot %d: dealer proof rejected", i)
		}
	})
}

// VerifyVotes batch-verifies every ballot's disjunctive vote proof.
func (b *Board) VerifyVotes() {
	bs := b.ballots
	b.Parallel(len(bs), func(i int) {
		bal := bs[i]
		bs[i].voteValid = bal.voteProof.Verify(b.suite, b.G, b.H, bal.encryptedVote, bal.commitments[0])
		if !bs[i].voteValid {
			b.Log.Warnf("ballot %d: vote proof rejected", i)
		}
	})
}

// CountValidVotes returns how many ballots passed VerifyVotes.
func (b *Board) CountValidVotes() int {
	n := 0
	for _, bal := range b.ballots {
		if bal.voteValid {
			n++
		}
	}
	return n
}

// TallyEncryptedVotes homomorphically sums the encrypted votes of
// every ballot that passed VerifyVotes.
func (b *Board) TallyEncryptedVotes() kyber.Point {
	acc := b.suite.Point().Null()
	for _, bal := range b.ballots {
		if bal.voteValid {
			acc.Add(acc, bal.encryptedVote)
		}
	}
	return acc
}

// SumEncryptedShares homomorphically sums, per party index, the
// encrypted shares of every ballot that passed both VerifyEncryptedShares
// and VerifyVotes: a ballot excluded from tally_encrypted_votes must
// also be excluded here, or its blinding secret would still land in
// the reconstructed G*S while its vote never reached the tally,
// corrupting the subtraction DecodeTally relies on. Parties that want
// to decrypt the tally's aggregated share run their Party over this
// sum exactly as they would a single dealer's output.
func (b *Board) SumEncryptedShares() []kyber.Point {
	sum := make([]kyber.Point, b.N)
	for i := range sum {
		sum[i] = b.suite.Point().Null()
	}
	for _, bal := range b.ballots {
		if !bal.valid || !bal.voteValid {
			continue
		}
		for i, share := range bal.encryptedShares {
			sum[i].Add(sum[i], share)
		}
	}
	return sum
}

// DecodeTally recovers the integer vote count from the board's
// homomorphic tally, given GS = G times the reconstructed sum of
// every valid ballot's blinding secret (the talliers' threshold
// reconstruction of SumEncryptedShares, e.g. via a Tallier's
// ReconstructSecret). It forms R = tally_encrypted_votes - GS =
// G*(sum of votes) and recovers the count by linear search over
// i = 0..count_valid_votes, since a sum of that many 0/1 votes cannot
// exceed it.
func (b *Board) DecodeTally(GS kyber.Point) (int, error) {
	r := b.suite.Point().Sub(b.TallyEncryptedVotes(), GS)
	acc := b.suite.Point().Null()
	bound := b.CountValidVotes()
	for i := 0; i <= bound; i++ {
		if acc.Equal(r) {
			return i, nil
		}
		acc.Add(acc, b.G)
	}
	return 0, errs.TallyDecodeFailed(bound)
}

// orderer is implemented by groups that expose their scalar field's
// raw modulus, needed for saferith-backed exponentiation outside the
// group abstraction.
type orderer interface {
	Order() *big.Int
}

// verifyDealerProof re-derives a dealer's Fiat-Shamir challenge over
// the reconstructed per-party generator evaluations (computed from the
// t+1 coefficient commitments and party index, as in
// precompute_lambda's power table) and checks it against the proof.
// Each x_i^j power is computed via saferith's constant-time modular
// exponentiation when the group exposes its order, falling back to the
// group's own scalar multiplication otherwise.
func verifyDealerProof(suite kyber.Suite, H kyber.Point, publicKeys, commitments, encShares []kyber.Point, proof *DealerProof, n, t int) bool {
	if proof == nil || len(proof.Z) != n || len(commitments) != t+1 || len(encShares) != n {
		return false
	}
	order, hasOrder := suite.(orderer)

	genEvals := make([]kyber.Point, n)
	a1 := make([]kyber.Point, n)
	a2 := make([]kyber.Point, n)
	for i := 0; i < n; i++ {
		xi := int64(i + 1)
		gi := suite.Point().Null()
		xPow := suite.Scalar().One()
		x := suite.Scalar().SetInt64(xi)
		for j := 0; j <= t; j++ {
			var pow kyber.Scalar
			if j == 0 {
				pow = suite.Scalar().One()
			} else if hasOrder {
				pow = modPow(suite, order.Order(), xi, int64(j))
			} else {
				xPow.Mul(xPow, x)
				pow = xPow
			}
			gi.Add(gi, suite.Point().Mul(pow, commitments[j]))
		}
		genEvals[i] = gi
		a1[i] = suite.Point().Add(suite.Point().Mul(proof.Z[i], H), suite.Point().Mul(proof.D, gi))
		a2[i] = suite.Point().Add(suite.Point().Mul(proof.Z[i], publicKeys[i]), suite.Point().Mul(proof.D, encShares[i]))
	}

	t2 := transcript.New(suite, []byte("schoenmakers/dealer"))
	t2.AppendPoints(genEvals...)
	t2.AppendPoints(encShares...)
	t2.AppendPoints(a1...)
	t2.AppendPoints(a2...)
	return proof.D.Equal(t2.Challenge())
}
