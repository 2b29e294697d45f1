package share

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/group/nist"
	"github.com/KULeuven-COSIC/ppvss-evoting/random"
)

func TestLagrangeReconstruct(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	n, thresh := 5, 2

	secret := g.Scalar().Pick(random.Stream)
	p := SampleSetF0(g, thresh, secret, random.Stream)

	lambdas := Lagrange(g, n, thresh)
	require.Len(t, lambdas, n)

	indices := []int{1, 2, 3}
	values := make([]kyber.Scalar, len(indices))
	for k, idx := range indices {
		values[k] = p.Evaluate(idx)
	}

	got := Reconstruct(g, values, indices, lambdas)
	assert.True(t, got.Equal(secret))
}

func TestLagrangeReconstructLargerThreshold(t *testing.T) {
	g := nist.NewBlakeSHA256P256()
	n, thresh := 7, 3

	secret := g.Scalar().Pick(random.Stream)
	p := SampleSetF0(g, thresh, secret, random.Stream)
	lambdas := Lagrange(g, n, thresh)

	// Reconstruction combines shares from the first t+1 parties, matching
	// how Party.ReconstructSecret selects its validated-share prefix.
	indices := []int{1, 2, 3, 4}
	values := make([]kyber.Scalar, len(indices))
	for k, idx := range indices {
		values[k] = p.Evaluate(idx)
	}

	got := Reconstruct(g, values, indices, lambdas)
	assert.True(t, got.Equal(secret))
}
