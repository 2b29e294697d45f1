package pis

import (
	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/fanout"
	"github.com/KULeuven-COSIC/ppvss-evoting/internal/telemetry"
)

// ballot is one voter's complete, as-yet-unverified submission.
type ballot struct {
	valid           bool
	encryptedShares []kyber.Point
	dealerProof     *DealerProof
	encryptedVote   kyber.Point
	voteValid       bool
	voteProof       *VoteProof
}

// Board collects ballots from m voters and batch-verifies them before
// handing the tallying parties an aggregated view.
type Board struct {
	suite      kyber.Suite
	G, PK0     kyber.Point
	PublicKeys []kyber.Point
	N, T       int

	Parallel fanout.Parallel
	Log      telemetry.Logger

	ballots []*ballot
}

// NewBoard constructs an empty board for n parties plus the fixed PK0
// escrow slot.
func NewBoard(suite kyber.Suite, G, PK0 kyber.Point, publicKeys []kyber.Point, n, t int) *Board {
	return &Board{
		suite: suite, G: G, PK0: PK0, PublicKeys: publicKeys, N: n, T: t,
		Parallel: fanout.Default,
		Log:      telemetry.Default(),
	}
}

// allKeys returns the n+1 keys the joint dealer proof runs over.
func (b *Board) allKeys() []kyber.Point {
	keys := make([]kyber.Point, 0, b.N+1)
	keys = append(keys, b.PK0)
	keys = append(keys, b.PublicKeys...)
	return keys
}

// IngestVote records one voter's ballot, initially unverified.
func (b *Board) IngestVote(r *VoteResult) {
	b.ballots = append(b.ballots, &ballot{
		encryptedShares: r.EncryptedShares,
		dealerProof:     r.DealerProof,
		encryptedVote:   r.EncryptedVote,
		voteProof:       r.VoteProof,
	})
}

// VerifyEncryptedShares batch-verifies every ballot's compact dealer
// proof, marking each ballot valid or invalid in place.
func (b *Board) VerifyEncryptedShares() {
	keys := b.allKeys()
	bs := b.ballots
	b.Parallel(len(bs), func(i int) {
		bal := bs[i]
		bs[i].valid = VerifyDealerProof(b.suite, keys, bal.encryptedShares, bal.dealerProof)
		if !bs[i].valid {
			b.Log.Warnf("ballot %d: dealer proof rejected", i)
		}
	})
}

// VerifyVotes batch-verifies every ballot's disjunctive vote proof
// against its own y0 (slot 0 of its encrypted-share array).
func (b *Board) VerifyVotes() {
	bs := b.ballots
	b.Parallel(len(bs), func(i int) {
		bal := bs[i]
		y0 := bal.encryptedShares[0]
		bs[i].voteValid = bal.voteProof.Verify(b.suite, b.G, b.PK0, bal.encryptedVote, y0)
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

// SumEncryptedShares homomorphically sums, per slot, the encrypted
// shares of every ballot that passed both VerifyEncryptedShares and
// VerifyVotes, returning an (n+1)-length array: a ballot excluded from
// tally_encrypted_votes must also be excluded here, or its blinding
// secret would still land in the reconstructed G*S while its vote
// never reached the tally, corrupting the subtraction DecodeTally
// relies on. Slot 0 (each ballot's PK0-encrypted secret, y0) is
// deliberately left unsummed: no party holds PK0's private key, so
// that slot is never decrypted downstream and carrying its sum
// forward would be dead weight.
func (b *Board) SumEncryptedShares() []kyber.Point {
	sum := make([]kyber.Point, b.N+1)
	for i := range sum {
		sum[i] = b.suite.Point().Null()
	}
	for _, bal := range b.ballots {
		if !bal.valid || !bal.voteValid {
			continue
		}
		for i := 1; i < len(bal.encryptedShares); i++ {
			sum[i].Add(sum[i], bal.encryptedShares[i])
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
