package schoenmakers

import (
	"math/big"

	"github.com/cronokirby/saferith"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
)

// modPow computes base^exp mod order via saferith's constant-time
// exponentiation and wraps the result back into the group's scalar
// field. The dealer-proof verifier uses it to reconstruct each party's
// power table (x_i^j for j=0..t) instead of repeated scalar
// multiplication.
func modPow(suite kyber.Suite, order *big.Int, base, exp int64) kyber.Scalar {
	m := saferith.ModulusFromBytes(order.Bytes())
	b := new(saferith.Nat).SetUint64(uint64(base))
	e := new(saferith.Nat).SetUint64(uint64(exp))
	r := new(saferith.Nat).Exp(b, e, m)
	return suite.Scalar().SetBytes(r.Bytes())
}
