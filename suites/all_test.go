package suites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-COSIC/ppvss-evoting/random"
)

func TestByNameKnownSuites(t *testing.T) {
	for _, name := range []string{"P256", "P256-SHAKE256"} {
		s, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("does-not-exist")
	assert.Error(t, err)
}

func TestShakeSuiteSharesGroupWithBlakeSuite(t *testing.T) {
	blake, err := ByName("P256")
	require.NoError(t, err)
	shake, err := ByName("P256-SHAKE256")
	require.NoError(t, err)

	assert.Equal(t, blake.ScalarLen(), shake.ScalarLen())
	assert.Equal(t, blake.PointLen(), shake.PointLen())

	// Both suites operate over the same P-256 group, so a point
	// generated by one decodes correctly under the other.
	p := blake.Point().Pick(random.Stream)
	buf, err := p.MarshalBinary()
	require.NoError(t, err)

	q := shake.Point()
	require.NoError(t, q.UnmarshalBinary(buf))
	assert.True(t, p.Equal(q))
}

func TestSuitesProduceDifferentTranscriptChallenges(t *testing.T) {
	blake, err := ByName("P256")
	require.NoError(t, err)
	shake, err := ByName("P256-SHAKE256")
	require.NoError(t, err)

	seed := []byte("suite comparison")
	cBlake := blake.XOF(seed)
	cShake := shake.XOF(seed)

	bufBlake := make([]byte, 32)
	bufShake := make([]byte, 32)
	_, err = cBlake.Read(bufBlake)
	require.NoError(t, err)
	_, err = cShake.Read(bufShake)
	require.NoError(t, err)

	assert.NotEqual(t, bufBlake, bufShake)
}
