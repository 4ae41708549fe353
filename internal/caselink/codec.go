package caselink

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// CaseData is the payload carried by a shareable case link: the disease and
// an optional author-written description. The JSON shape doubles as the
// canonical cache key for generated cases.
type CaseData struct {
	Disease         string `json:"disease"`
	CaseDescription string `json:"case_description,omitempty"`
}

// Canonical returns the plain serialized form of the payload, used as the
// case-cache key. Field order is fixed by the struct, so equal payloads
// always serialize identically.
func Canonical(d CaseData) string {
	b, _ := json.Marshal(d)
	return string(b)
}

// Codec turns case payloads into opaque URL-safe tokens and back. Tokens
// are authenticated: a tampered or truncated token fails to decode rather
// than yielding attacker-chosen case data.
type Codec struct {
	key [32]byte
}

// NewCodec derives the sealing key from a raw secret via SHA-256, so any
// string secret works.
func NewCodec(secret string) *Codec {
	c := &Codec{key: sha256.Sum256([]byte(secret))}
	return c
}

var ErrInvalidToken = errors.New("caselink: invalid token")

// Encode seals the payload into a URL-safe token.
func (c *Codec) Encode(d CaseData) (string, error) {
	plain, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("caselink: nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode opens a token produced by Encode.
func (c *Codec) Decode(token string) (CaseData, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) < 24 {
		return CaseData{}, ErrInvalidToken
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plain, ok := secretbox.Open(nil, raw[24:], &nonce, &c.key)
	if !ok {
		return CaseData{}, ErrInvalidToken
	}
	var d CaseData
	if err := json.Unmarshal(plain, &d); err != nil {
		return CaseData{}, ErrInvalidToken
	}
	if d.Disease == "" {
		return CaseData{}, ErrInvalidToken
	}
	return d, nil
}
