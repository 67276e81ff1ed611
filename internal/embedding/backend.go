// Package embedding provides a small deterministic vector index used to find
// tasks similar to a query string. Vectors come from a pluggable Backend; the
// default hashes text with sha256 so results are stable across runs and
// require no model downloads.
package embedding

import (
	"crypto/sha256"
	"encoding/binary"
)

// Dim is the vector width produced by HashBackend.
const Dim = 8

// Backend converts text into a fixed-width vector.
type Backend interface {
	Embed(text string) []float64
}

// HashBackend maps text deterministically to Dim floats in [0,1) by slicing
// a sha256 digest into 4-byte chunks.
type HashBackend struct{}

func (HashBackend) Embed(text string) []float64 {
	digest := sha256.Sum256([]byte(text))
	vec := make([]float64, Dim)
	for i := 0; i < Dim; i++ {
		chunk := binary.BigEndian.Uint32(digest[i*4 : (i+1)*4])
		vec[i] = float64(chunk) / (1 << 32)
	}
	return vec
}
