package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValid(t *testing.T) {
	p, err := Load(`
n = 5
t = 2
group = "P256"
`)
	require.NoError(t, err)
	assert.Equal(t, 5, p.N)
	assert.Equal(t, 2, p.T)

	suite, err := p.Suite()
	require.NoError(t, err)
	assert.Equal(t, "P256", suite.String())
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	_, err := Load(`
n = 4
t = 2
group = "P256"
`)
	assert.Error(t, err)
}

func TestLoadUnknownGroup(t *testing.T) {
	p, err := Load(`
n = 3
t = 1
group = "does-not-exist"
`)
	require.NoError(t, err)
	_, err = p.Suite()
	assert.Error(t, err)
}

func TestLoadMalformedToml(t *testing.T) {
	_, err := Load("not valid toml {{{")
	assert.Error(t, err)
}
