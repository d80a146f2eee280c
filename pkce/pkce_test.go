package pkce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeVerifier(t *testing.T) {
	verifier, err := NewCodeVerifier()
	require.NoError(t, err)
	assert.Len(t, verifier, verifierLen)

	for _, c := range verifier {
		assert.True(t, strings.ContainsRune(alphanumeric, c), "unexpected char %q", c)
	}

	other, err := NewCodeVerifier()
	require.NoError(t, err)
	assert.NotEqual(t, verifier, other)
}

func TestNewCodeChallenge(t *testing.T) {
	// RFC 7636 appendix B vector.
	challenge := NewCodeChallenge("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk")
	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", challenge)

	assert.NotContains(t, challenge, "=")
	assert.NotContains(t, challenge, "+")
	assert.NotContains(t, challenge, "/")
}
