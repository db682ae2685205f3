package auth

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// nonceAlphabet is the 62-symbol alphabet the random prefix is drawn from.
const nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// nonceLength is the length of the random signature prefix.
const nonceLength = 6

// Credentials holds the API key and shared secret for signing requests.
// The secret never appears in URLs or logs; it only feeds the digest.
type Credentials struct {
	Key    string // API key, sent as the apiKey request parameter
	Secret string // Shared secret known to Codeforces
}

// NewCredentials validates and wraps an API key/secret pair.
func NewCredentials(key, secret string) (*Credentials, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if secret == "" {
		return nil, fmt.Errorf("API secret is required")
	}
	return &Credentials{Key: key, Secret: secret}, nil
}

// Sign computes the apiSig value for a method call with the given
// parameters. The params map must already contain every parameter that
// will appear in the request URL, including apiKey and time.
//
// The randomness only salts the digest; the scheme's security rests on
// the secret, so a non-cryptographic source is sufficient here.
func (c *Credentials) Sign(method string, params map[string]string) string {
	return c.signWith(nonce(), method, params)
}

// signWith computes the signature with a caller-supplied prefix.
// Given a fixed prefix the result is a pure function of its inputs.
func (c *Credentials) signWith(prefix, method string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString("/")
	b.WriteString(method)
	b.WriteString("?")
	for i, k := range keys {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	b.WriteString("#")
	b.WriteString(c.Secret)

	sum := sha512.Sum512([]byte(b.String()))
	return prefix + hex.EncodeToString(sum[:])
}

// nonce returns a 6-character random alphanumeric prefix.
func nonce() string {
	buf := make([]byte, nonceLength)
	for i := range buf {
		buf[i] = nonceAlphabet[rand.IntN(len(nonceAlphabet))]
	}
	return string(buf)
}
