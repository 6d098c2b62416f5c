// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// Hasher computes keyed HMAC-SHA256 digests over request bodies. Hash
// instances are pooled; a Hasher is safe for concurrent use.
//
// A Hasher built from an empty key is disabled: Enabled reports false and
// callers skip signing and verification.
type Hasher struct {
	hashKey []byte
	pool    sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	h := &Hasher{hashKey: []byte(hashKey)}
	h.pool.New = func() any {
		return hmac.New(sha256.New, h.hashKey)
	}
	return h
}

// Enabled reports whether a key was configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.hashKey) > 0
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HexSum returns the digest of data as a hex string, the form sent in
// [HashHeader].
func (h *Hasher) HexSum(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex digest of data. Comparison is
// constant time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	want, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), want)
}

// HashString computes a one-off hex HMAC-SHA256 of data without touching a
// pool.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
