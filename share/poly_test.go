package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/group/nist"
	"github.com/KULeuven-COSIC/ppvss-evoting/random"
)

func TestPriPolySecret(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	secret := g.Scalar().SetInt64(42)
	p := SampleSetF0(g, 2, secret, random.Stream)

	assert.True(t, p.Secret().Equal(secret))
	assert.Equal(t, 2, p.Degree())
	assert.True(t, p.Evaluate(0).Equal(secret))
}

func TestPriPolyEvaluateMultiply(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	secret := g.Scalar().Pick(random.Stream)
	p := SampleSetF0(g, 1, secret, random.Stream)

	keys := make([]kyber.Point, 3)
	privs := make([]kyber.Scalar, 3)
	for i := range keys {
		privs[i] = g.Scalar().Pick(random.Stream)
		keys[i] = g.Point().Mul(privs[i], nil)
	}

	evals, enc := p.EvaluateMultiply(keys, 1)
	require.Len(t, evals, 3)
	require.Len(t, enc, 3)
	for i := range keys {
		want := g.Point().Mul(evals[i], keys[i])
		assert.True(t, want.Equal(enc[i]))
		assert.True(t, evals[i].Equal(p.Evaluate(i+1)))
	}
}

func TestPriPolyCommit(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	secret := g.Scalar().Pick(random.Stream)
	p := SampleSetF0(g, 2, secret, random.Stream)

	commits := p.Commit(nil)
	require.Len(t, commits, 3)
	for i, c := range commits {
		assert.True(t, c.Equal(g.Point().Mul(p.Coeff(i), nil)))
	}
}

func TestPriPolyAdd(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	p := Sample(g, 2, random.Stream)
	q := Sample(g, 2, random.Stream)

	sum, err := p.Add(q)
	require.NoError(t, err)
	for i := 0; i <= 2; i++ {
		want := g.Scalar().Add(p.Coeff(i), q.Coeff(i))
		assert.True(t, want.Equal(sum.Coeff(i)))
	}

	_, err = p.Add(Sample(g, 1, random.Stream))
	assert.Error(t, err)
}

func TestPriPolyMulSum(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	p := Sample(g, 2, random.Stream)
	q := Sample(g, 2, random.Stream)
	mulVal := g.Scalar().Pick(random.Stream)

	z, err := p.MulSum(mulVal, q)
	require.NoError(t, err)
	for i := 0; i <= 2; i++ {
		want := g.Scalar().Add(g.Scalar().Mul(p.Coeff(i), mulVal), q.Coeff(i))
		assert.True(t, want.Equal(z.Coeff(i)))
	}

	_, err = p.MulSum(mulVal, Sample(g, 1, random.Stream))
	assert.Error(t, err)
}

func TestPriPolyFromCoeffsRoundTrip(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	p := Sample(g, 3, random.Stream)

	q := FromCoeffs(g, p.Coeffs())
	assert.Equal(t, p.Degree(), q.Degree())
	for i := 0; i <= p.Degree(); i++ {
		assert.True(t, p.Coeff(i).Equal(q.Coeff(i)))
	}
}
