package schoenmakers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/group/nist"
	"github.com/KULeuven-COSIC/ppvss-evoting/random"
	"github.com/KULeuven-COSIC/ppvss-evoting/share"
)

const (
	testN = 5
	testT = 2
)

func newTestParties(t *testing.T, suite kyber.Suite, G, H kyber.Point) []*Party {
	t.Helper()
	parties := make([]*Party, testN)
	for i := 1; i <= testN; i++ {
		p, err := NewParty(suite, G, H, random.Stream, testN, testT, i)
		require.NoError(t, err)
		parties[i-1] = p
	}
	publicKeys := make([]kyber.Point, testN)
	for i, p := range parties {
		publicKeys[i] = p.PublicKey
	}
	for _, p := range parties {
		peers := make([]kyber.Point, 0, testN-1)
		for i, pk := range publicKeys {
			if i != p.Index-1 {
				peers = append(peers, pk)
			}
		}
		require.NoError(t, p.IngestPublicKeys(peers))
	}
	return parties
}

func TestDealAndReconstructSecret(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(random.Stream)

	parties := newTestParties(t, suite, G, H)
	publicKeys := parties[0].PublicKeys

	dealer, err := NewDealer(suite, H, testN, testT, publicKeys)
	require.NoError(t, err)

	secret := suite.Scalar().Pick(random.Stream)
	encShares, proof, commitments, err := dealer.DealSecret(random.Stream, secret)
	require.NoError(t, err)

	ok := verifyDealerProof(suite, H, publicKeys, commitments, encShares, proof, testN, testT)
	assert.True(t, ok)

	lambdas := share.Lagrange(suite, testN, testT)

	for _, p := range parties {
		require.NoError(t, p.IngestEncryptedShares(encShares))
		require.NoError(t, p.IngestCommitments(commitments))
		require.NoError(t, p.IngestDealerProof(proof))
		require.NoError(t, p.DecryptShare())
		require.NoError(t, p.DleqShare(random.Stream))
	}

	for _, p := range parties {
		peerShares := make([]kyber.Point, 0, testN-1)
		peerProofs := make([]*ShareProof, 0, testN-1)
		for _, q := range parties {
			if q.Index == p.Index {
				continue
			}
			peerShares = append(peerShares, q.DecryptedShare)
			peerProofs = append(peerProofs, q.ShareProof)
		}
		require.NoError(t, p.IngestDecryptedSharesAndProofs(peerShares, peerProofs))

		valid, err := p.VerifyDecryptedShares()
		require.NoError(t, err)
		assert.True(t, valid)

		recovered, err := p.ReconstructSecret(lambdas)
		require.NoError(t, err)
		assert.True(t, recovered.Equal(suite.Point().Mul(secret, G)))
	}
}

func TestVerifyDealerProofRejectsTamperedShare(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(random.Stream)
	parties := newTestParties(t, suite, G, H)
	publicKeys := parties[0].PublicKeys

	dealer, err := NewDealer(suite, H, testN, testT, publicKeys)
	require.NoError(t, err)
	secret := suite.Scalar().Pick(random.Stream)
	encShares, proof, commitments, err := dealer.DealSecret(random.Stream, secret)
	require.NoError(t, err)

	encShares[0] = suite.Point().Pick(random.Stream)
	assert.False(t, verifyDealerProof(suite, H, publicKeys, commitments, encShares, proof, testN, testT))
}

func TestVoteProofRoundTrip(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(random.Stream)
	parties := newTestParties(t, suite, G, H)
	publicKeys := parties[0].PublicKeys

	for _, choice := range []bool{false, true} {
		voter, err := NewVoter(suite, G, H, testN, testT, publicKeys)
		require.NoError(t, err)

		result, err := voter.Vote(random.Stream, choice)
		require.NoError(t, err)

		ok := result.VoteProof.Verify(suite, G, H, result.EncryptedVote, result.Commitments[0])
		assert.True(t, ok, "choice=%v", choice)
	}
}

func TestVoteProofRejectsWrongCommitment(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(random.Stream)
	parties := newTestParties(t, suite, G, H)
	publicKeys := parties[0].PublicKeys

	voter, err := NewVoter(suite, G, H, testN, testT, publicKeys)
	require.NoError(t, err)
	result, err := voter.Vote(random.Stream, true)
	require.NoError(t, err)

	wrongC0 := suite.Point().Pick(random.Stream)
	assert.False(t, result.VoteProof.Verify(suite, G, H, result.EncryptedVote, wrongC0))
}

func TestBoardTallyAndTallierReconstruct(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(random.Stream)

	talliers := make([]*Party, testN)
	for i := 1; i <= testN; i++ {
		p, err := NewParty(suite, G, H, random.Stream, testN, testT, i)
		require.NoError(t, err)
		talliers[i-1] = p
	}
	publicKeys := make([]kyber.Point, testN)
	for i, p := range talliers {
		publicKeys[i] = p.PublicKey
	}

	board := NewBoard(suite, G, H, publicKeys, testN, testT)

	const numVoters = 4
	votes := []bool{true, false, true, true}
	for i := 0; i < numVoters; i++ {
		voter, err := NewVoter(suite, G, H, testN, testT, publicKeys)
		require.NoError(t, err)
		result, err := voter.Vote(random.Stream, votes[i])
		require.NoError(t, err)
		board.IngestVote(result)
	}

	board.VerifyEncryptedShares()
	board.VerifyVotes()
	assert.Equal(t, numVoters, board.CountValidVotes())

	wantCount := 0
	for _, v := range votes {
		if v {
			wantCount++
		}
	}

	// Re-derive each party's public-key peer view the same way
	// newTestParties does, then run the threshold decryption flow over
	// the board's summed shares.
	for _, p := range talliers {
		peers := make([]kyber.Point, 0, testN-1)
		for i, pk := range publicKeys {
			if i != p.Index-1 {
				peers = append(peers, pk)
			}
		}
		require.NoError(t, p.IngestPublicKeys(peers))
	}

	sum := board.SumEncryptedShares()
	lambdas := share.Lagrange(suite, testN, testT)
	for _, p := range talliers {
		require.NoError(t, p.IngestEncryptedShares(sum))
		require.NoError(t, p.DecryptShare())
		require.NoError(t, p.DleqShare(random.Stream))
	}
	for _, p := range talliers {
		peerShares := make([]kyber.Point, 0, testN-1)
		peerProofs := make([]*ShareProof, 0, testN-1)
		for _, q := range talliers {
			if q.Index == p.Index {
				continue
			}
			peerShares = append(peerShares, q.DecryptedShare)
			peerProofs = append(peerProofs, q.ShareProof)
		}
		require.NoError(t, p.IngestDecryptedSharesAndProofs(peerShares, peerProofs))
		valid, err := p.VerifyDecryptedShares()
		require.NoError(t, err)
		assert.True(t, valid)
	}

	// Any tallier reconstructs G*S, the blinding sum over valid
	// ballots; the board then decodes the tally by subtracting it out.
	GS, err := talliers[0].ReconstructSecret(lambdas)
	require.NoError(t, err)

	got, err := board.DecodeTally(GS)
	require.NoError(t, err)
	assert.Equal(t, wantCount, got)
}

func TestVoteResultWireRoundTrip(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(random.Stream)
	parties := newTestParties(t, suite, G, H)
	publicKeys := parties[0].PublicKeys

	voter, err := NewVoter(suite, G, H, testN, testT, publicKeys)
	require.NoError(t, err)
	result, err := voter.Vote(random.Stream, true)
	require.NoError(t, err)

	data, err := result.MarshalBinary(suite)
	require.NoError(t, err)

	decoded, err := UnmarshalVoteResult(suite, data)
	require.NoError(t, err)

	assert.True(t, result.EncryptedVote.Equal(decoded.EncryptedVote))
	require.Len(t, decoded.EncryptedShares, len(result.EncryptedShares))
	for i := range result.EncryptedShares {
		assert.True(t, result.EncryptedShares[i].Equal(decoded.EncryptedShares[i]))
	}
	assert.True(t, decoded.VoteProof.Verify(suite, G, H, decoded.EncryptedVote, decoded.Commitments[0]))
}
