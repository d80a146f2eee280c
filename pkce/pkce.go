package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	b64 "encoding/base64"
	"strings"
)

const verifierLen = 128

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewCodeVerifier generates the random alphanumeric verifier the
// frontend holds on to during the Spotify authorization flow.
func NewCodeVerifier() (string, error) {
	bytes := make([]byte, verifierLen)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return string(bytes), nil
}

// NewCodeChallenge derives the S256 challenge from a verifier, base64
// url encoded without padding.
func NewCodeChallenge(codeVerifier string) string {
	hash := sha256.Sum256([]byte(codeVerifier))
	baseStr := b64.URLEncoding.EncodeToString(hash[:])
	return strings.Replace(strings.Replace(strings.Replace(baseStr, "=", "", -1), "+", "-", -1), "/", "_", -1)
}
