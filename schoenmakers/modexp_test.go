package schoenmakers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KULeuven-COSIC/ppvss-evoting/group/nist"
)

func TestModPowMatchesRepeatedMultiplication(t *testing.T) {
	suite := nist.NewBlakeSHA256P256()
	ordr := suite.(orderer).Order()

	for base := int64(1); base <= 4; base++ {
		for exp := int64(0); exp <= 5; exp++ {
			got := modPow(suite, ordr, base, exp)

			want := suite.Scalar().One()
			b := suite.Scalar().SetInt64(base)
			for i := int64(0); i < exp; i++ {
				want.Mul(want, b)
			}
			assert.True(t, want.Equal(got), "base=%d exp=%d", base, exp)
		}
	}
}
