package auth

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"
)

func TestNewCredentials(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		creds, err := NewCredentials("key", "secret")
		if err != nil {
			t.Fatalf("NewCredentials failed: %v", err)
		}
		if creds.Key != "key" || creds.Secret != "secret" {
			t.Errorf("Credentials = %+v, want key/secret", creds)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := NewCredentials("", "secret"); err == nil {
			t.Error("expected error for empty key")
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		if _, err := NewCredentials("key", ""); err == nil {
			t.Error("expected error for empty secret")
		}
	})
}

func TestSignWith_Deterministic(t *testing.T) {
	creds := &Credentials{Key: "k", Secret: "s3cret"}
	params := map[string]string{
		"apiKey": "k",
		"handle": "tourist",
		"from":   "1",
		"count":  "10",
		"time":   "1700000000",
	}

	a := creds.signWith("abc123", "user.status", params)
	b := creds.signWith("abc123", "user.status", params)
	if a != b {
		t.Errorf("same prefix and inputs produced different signatures:\n%s\n%s", a, b)
	}
}

func TestSignWith_ParamSensitivity(t *testing.T) {
	creds := &Credentials{Key: "k", Secret: "s3cret"}
	base := map[string]string{
		"apiKey": "k",
		"handle": "tourist",
		"from":   "1",
		"count":  "10",
		"time":   "1700000000",
	}
	ref := creds.signWith("abc123", "user.status", base)

	for key := range base {
		changed := make(map[string]string, len(base))
		for k, v := range base {
			changed[k] = v
		}
		changed[key] += "x"

		if got := creds.signWith("abc123", "user.status", changed); got == ref {
			t.Errorf("changing %q did not change the signature", key)
		}
	}
}

// TestSignWith_CanonicalOrder pins the canonical string format: parameters
// sorted ascending by key, joined with &, secret appended after #.
func TestSignWith_CanonicalOrder(t *testing.T) {
	creds := &Credentials{Key: "k", Secret: "s3cret"}
	params := map[string]string{
		"handle": "x",
		"from":   "1",
		"count":  "2",
	}

	sum := sha512.Sum512([]byte("abc123/user.status?count=2&from=1&handle=x#s3cret"))
	want := "abc123" + hex.EncodeToString(sum[:])

	if got := creds.signWith("abc123", "user.status", params); got != want {
		t.Errorf("signWith = %s, want %s", got, want)
	}
}

func TestSign_Format(t *testing.T) {
	creds := &Credentials{Key: "k", Secret: "s3cret"}
	sig := creds.Sign("user.status", map[string]string{"handle": "x"})

	if len(sig) != nonceLength+sha512.Size*2 {
		t.Fatalf("signature length = %d, want %d", len(sig), nonceLength+sha512.Size*2)
	}
	for _, ch := range sig[:nonceLength] {
		if !strings.ContainsRune(nonceAlphabet, ch) {
			t.Errorf("prefix contains %q, not in alphabet", ch)
		}
	}
	for _, ch := range sig[nonceLength:] {
		if !strings.ContainsRune("0123456789abcdef", ch) {
			t.Errorf("digest contains %q, not lowercase hex", ch)
		}
	}
}

func TestNonce(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := nonce()
		if len(n) != nonceLength {
			t.Fatalf("nonce length = %d, want %d", len(n), nonceLength)
		}
		for _, ch := range n {
			if !strings.ContainsRune(nonceAlphabet, ch) {
				t.Errorf("nonce contains %q, not in alphabet", ch)
			}
		}
	}
}
