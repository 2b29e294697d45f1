package schoenmakers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/group/nist"
	"github.com/KULeuven-COSIC/ppvss-evoting/random"
	"github.com/KULeuven-COSIC/ppvss-evoting/share"
)

// deterministicStream returns a chacha20-backed cipher.Stream seeded
// from seed, giving scenario tests a reproducible run instead of
// random.Stream's crypto/rand backing.
func deterministicStream(t *testing.T, seed byte) *chacha20.Cipher {
	t.Helper()
	key := make([]byte, chacha20.KeySize)
	key[0] = seed
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	require.NoError(t, err)
	return c
}

// scenarioSetup builds n parties, a board, and the parties' public
// keys, ready to ingest ballots.
func scenarioSetup(t *testing.T, suite kyber.Suite, G, H kyber.Point, n, tt int, seed byte) ([]*Party, *Board) {
	t.Helper()
	rand := deterministicStream(t, seed)
	parties := make([]*Party, n)
	for i := 1; i <= n; i++ {
		p, err := NewParty(suite, G, H, rand, n, tt, i)
		require.NoError(t, err)
		parties[i-1] = p
	}
	publicKeys := make([]kyber.Point, n)
	for i, p := range parties {
		publicKeys[i] = p.PublicKey
	}
	for _, p := range parties {
		peers := make([]kyber.Point, 0, n-1)
		for i, pk := range publicKeys {
			if i != p.Index-1 {
				peers = append(peers, pk)
			}
		}
		require.NoError(t, p.IngestPublicKeys(peers))
	}
	board := NewBoard(suite, G, H, publicKeys, n, tt)
	return parties, board
}

// runTally drives the full tallier flow against board and returns the
// decoded vote count.
func runTally(t *testing.T, suite kyber.Suite, parties []*Party, board *Board, n, tt int, seed byte) int {
	t.Helper()
	rand := deterministicStream(t, seed)

	board.VerifyEncryptedShares()
	board.VerifyVotes()

	sum := board.SumEncryptedShares()
	lambdas := share.Lagrange(suite, n, tt)
	for _, p := range parties {
		require.NoError(t, p.IngestEncryptedShares(sum))
		require.NoError(t, p.DecryptShare())
		require.NoError(t, p.DleqShare(rand))
	}
	for _, p := range parties {
		peerShares := make([]kyber.Point, 0, n-1)
		peerProofs := make([]*ShareProof, 0, n-1)
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
	}

	GS, err := parties[0].ReconstructSecret(lambdas)
	require.NoError(t, err)
	got, err := board.DecodeTally(GS)
	require.NoError(t, err)
	return got
}

// TestScenarioSmoke is spec scenario 1: n=3, t=1, m=1, v=1.
func TestScenarioSmoke(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(deterministicStream(t, 0xA0))

	n, tt := 3, 1
	parties, board := scenarioSetup(t, suite, G, H, n, tt, 0xA1)
	publicKeys := parties[0].PublicKeys

	voter, err := NewVoter(suite, G, H, n, tt, publicKeys)
	require.NoError(t, err)
	result, err := voter.Vote(deterministicStream(t, 0xA2), true)
	require.NoError(t, err)
	board.IngestVote(result)

	got := runTally(t, suite, parties, board, n, tt, 0xA3)
	assert.Equal(t, 1, board.CountValidVotes())
	assert.Equal(t, 1, got)
}

// TestScenarioThreshold is spec scenario 2: n=5, t=2, m=4, v=[1,0,1,1].
// Reconstruction is exercised over the canonical {1,2,3} prefix that
// share.Lagrange's precomputed coefficients are actually valid for
// (see share/lagrange_test.go): lambda_i is fixed against indices
// 1..t+1, so an arbitrary subset like {2,4,5} would need a
// general per-subset Lagrange basis that neither the original
// precompute_lambda nor this port provides.
func TestScenarioThreshold(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(deterministicStream(t, 0xB0))

	n, tt := 5, 2
	parties, board := scenarioSetup(t, suite, G, H, n, tt, 0xB1)
	publicKeys := parties[0].PublicKeys

	votes := []bool{true, false, true, true}
	for i, v := range votes {
		voter, err := NewVoter(suite, G, H, n, tt, publicKeys)
		require.NoError(t, err)
		result, err := voter.Vote(deterministicStream(t, 0xB2+byte(i)), v)
		require.NoError(t, err)
		board.IngestVote(result)
	}

	got := runTally(t, suite, parties, board, n, tt, 0xB9)
	assert.Equal(t, 4, board.CountValidVotes())
	assert.Equal(t, 3, got)
}

// TestScenarioRejection is spec scenario 3: n=3, t=1, m=2, with the
// second ballot's encrypted vote bit-flipped so its vote proof no
// longer verifies.
func TestScenarioRejection(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(deterministicStream(t, 0xC0))

	n, tt := 3, 1
	parties, board := scenarioSetup(t, suite, G, H, n, tt, 0xC1)
	publicKeys := parties[0].PublicKeys

	voter0, err := NewVoter(suite, G, H, n, tt, publicKeys)
	require.NoError(t, err)
	result0, err := voter0.Vote(deterministicStream(t, 0xC2), true)
	require.NoError(t, err)
	board.IngestVote(result0)

	voter1, err := NewVoter(suite, G, H, n, tt, publicKeys)
	require.NoError(t, err)
	result1, err := voter1.Vote(deterministicStream(t, 0xC3), true)
	require.NoError(t, err)
	result1.EncryptedVote = suite.Point().Add(result1.EncryptedVote, suite.Point().Base())
	board.IngestVote(result1)

	got := runTally(t, suite, parties, board, n, tt, 0xC9)
	assert.Equal(t, 1, board.CountValidVotes())
	assert.Equal(t, 1, got)
}

// TestScenarioBadDealer is spec scenario 4: a dealer substitutes one
// encrypted share with a random point; verify_encrypted_shares must
// reject the ballot and exclude it from the sum.
func TestScenarioBadDealer(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(deterministicStream(t, 0xD0))

	n, tt := 3, 1
	parties, board := scenarioSetup(t, suite, G, H, n, tt, 0xD1)
	publicKeys := parties[0].PublicKeys

	voter, err := NewVoter(suite, G, H, n, tt, publicKeys)
	require.NoError(t, err)
	result, err := voter.Vote(deterministicStream(t, 0xD2), true)
	require.NoError(t, err)
	result.EncryptedShares[1] = suite.Point().Pick(deterministicStream(t, 0xD3))
	board.IngestVote(result)

	board.VerifyEncryptedShares()
	assert.False(t, board.ballots[0].valid)

	sum := board.SumEncryptedShares()
	for _, p := range sum {
		assert.True(t, p.Equal(suite.Point().Null()))
	}
}

// TestScenarioFullHouse is spec scenario 5: n=7, t=3, m=10 with 4
// valid-yes ballots and the rest valid-no.
func TestScenarioFullHouse(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	G := suite.Point().Base()
	H := suite.Point().Pick(deterministicStream(t, 0xE0))

	n, tt := 7, 3
	parties, board := scenarioSetup(t, suite, G, H, n, tt, 0xE1)
	publicKeys := parties[0].PublicKeys

	votes := []bool{true, true, true, true, false, false, false, false, false, false}
	for i, v := range votes {
		voter, err := NewVoter(suite, G, H, n, tt, publicKeys)
		require.NoError(t, err)
		result, err := voter.Vote(deterministicStream(t, 0xE2+byte(i)), v)
		require.NoError(t, err)
		board.IngestVote(result)
	}

	got := runTally(t, suite, parties, board, n, tt, 0xEF)
	assert.Equal(t, len(votes), board.CountValidVotes())
	assert.Equal(t, 4, got)
}
