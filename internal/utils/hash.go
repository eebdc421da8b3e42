// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedVision

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for payload hashing, HTTP response writing,
// and other common operations.
package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests for payload integrity checks.
// It keeps a pool of hash instances so the per-entity verification path,
// which runs on every pull, does not allocate a fresh HMAC state each time.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher whose pooled HMAC instances are all keyed with
// hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash computes the HMAC-SHA256 digest of data using a pooled hash instance.
func (h *Hasher) Hash(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// HashString computes an HMAC-SHA256 signature over the given string using
// the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher.Hash], a new HMAC instance is created on each call.
// Suitable for one-off hashing where no Hasher is at hand.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
