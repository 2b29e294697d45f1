package share

import kyber "github.com/KULeuven-COSIC/ppvss-evoting"

// Lagrange precomputes the reconstruction coefficients lambda_i for
// parties 1..n against the first t+1 indices, matching
// precompute_lambda: lambda_i = prod_{j=1..t+1, j!=i} j/(j-i).
func Lagrange(g kyber.Group, n, t int) []kyber.Scalar {
	lambdas := make([]kyber.Scalar, n)
	num := g.Scalar()
	den := g.Scalar()
	diff := g.Scalar()
	for idx := 1; idx <= n; idx++ {
		i := g.Scalar().SetInt64(int64(idx))
		lambda := g.Scalar().One()
		for j := 1; j <= t+1; j++ {
			if j == idx {
				continue
			}
			jS := g.Scalar().SetInt64(int64(j))
			num.Set(jS)
			den.Inv(diff.Sub(jS, i))
			lambda.Mul(lambda, num.Mul(num, den))
		}
		lambdas[idx-1] = lambda
	}
	return lambdas
}

// Reconstruct sums shareValues[k]*lambdas[indices[k]-1] over the given
// 1-based party indices. With lambdas from Lagrange it returns the
// shared secret only when indices is exactly {1..t+1}; for any other
// index set, or more than t+1 shares, the sum is not the secret.
func Reconstruct(g kyber.Group, shareValues []kyber.Scalar, indices []int, lambdas []kyber.Scalar) kyber.Scalar {
	acc := g.Scalar().Zero()
	term := g.Scalar()
	for k, idx := range indices {
		acc.Add(acc, term.Mul(shareValues[k], lambdas[idx-1]))
	}
	return acc
}
