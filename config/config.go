// Package config loads the threshold and group parameters an election
// run is configured with, either programmatically or from a TOML
// file, mirroring the decode-a-struct pattern the teacher's own
// simulation config loader uses.
package config

import (
	"github.com/BurntSushi/toml"

	kyber "github.com/KULeuven-COSIC/ppvss-evoting"
	"github.com/KULeuven-COSIC/ppvss-evoting/errs"
	"github.com/KULeuven-COSIC/ppvss-evoting/suites"
)

// Params is a single election's threshold configuration.
type Params struct {
	N         int    `toml:"n"`
	T         int    `toml:"t"`
	GroupName string `toml:"group"`
}

// Validate enforces the strict n == 2t+1 threshold relation.
func (p *Params) Validate() error {
	if !(p.T < p.N && p.N == 2*p.T+1) {
		return errs.InvalidParameterSet(p.N, p.T, 0)
	}
	return nil
}

// Suite resolves GroupName to a concrete kyber.Suite via the suites
// registry.
func (p *Params) Suite() (kyber.Suite, error) {
	return suites.ByName(p.GroupName)
}

// Load decodes Params from a TOML document.
func Load(data string) (*Params, error) {
	var p Params
	if _, err := toml.Decode(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
