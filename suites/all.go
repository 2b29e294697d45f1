// Package suites provides a name-indexed registry of this module's
// kyber.Suite implementations.
package suites

import (
	"fmt"
	"sync"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/group/nist"
)

var (
	mu     sync.Mutex
	suites = map[string]kyber.Suite{}
)

func register(s kyber.Suite) {
	mu.Lock()
	defer mu.Unlock()
	suites[s.String()] = s
}

// ByName looks up a registered suite by its String() name, e.g. "P256".
func ByName(name string) (kyber.Suite, error) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("suites: unknown suite %q", name)
	}
	return s, nil
}

func init() {
	// Two suites over the same variable-time NIST P-256 group built on
	// crypto/elliptic, differing only in their Fiat-Shamir XOF. The
	// teacher's pairing-curve suites (bn256, bls12381) have no caller
	// here.
	register(nist.NewBlakeSHA256P256())
	register(nist.NewShakeSHA256P256())
}
