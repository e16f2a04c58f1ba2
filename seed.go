package ed25519core

import (
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// SeedSize is the length in octets of an Ed25519 private seed.
const SeedSize = 32

// Seed is an immutable 32-octet secret. Every one of the 2^256 possible
// values is a valid seed; it is never used as a scalar directly, only
// hashed during Expand. Construct one with NewSeed or GenerateSeed
// rather than relying on the zero value, which is a valid but
// predictable seed.
type Seed struct {
	b [SeedSize]byte
}

// NewSeed copies b into a Seed. b must be exactly SeedSize octets, or
// NewSeed returns an error matching ErrInvalidSeed.
func NewSeed(b []byte) (Seed, error) {
	if len(b) != SeedSize {
		return Seed{}, wrapErr(KindInvalidSeed, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(b)))
	}
	var s Seed
	copy(s.b[:], b)
	return s, nil
}

// GenerateSeed reads a fresh Seed from rand, which should be
// crypto/rand.Reader in production use.
func GenerateSeed(rand io.Reader) (Seed, error) {
	var s Seed
	if _, err := io.ReadFull(rand, s.b[:]); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Bytes returns a defensive copy of the seed's 32 octets.
func (s Seed) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, s.b[:])
	return out
}

// Equal reports whether s and other encode the same seed.
func (s Seed) Equal(other Seed) bool {
	return s.b == other.b
}

// Expand derives the expanded private key material from the seed, per
// RFC 8032 §5.1.5 steps 1-3: hash the seed, prune the low half into the
// secret scalar, keep the high half as the nonce prefix, and cache the
// corresponding public key. This cannot fail and costs one SHA-512 and
// one fixed-base scalar multiplication; callers that sign repeatedly
// should call Expand once and reuse the result.
func (s Seed) Expand() ExpandedPrivateKey {
	h := sha512.Sum512(s.b[:])

	secret := edwards25519.NewScalar().SetBytesWithClamping(h[:32])

	var prefix [32]byte
	copy(prefix[:], h[32:])

	point := new(edwards25519.Point).ScalarBaseMult(secret)
	pub := newPublicKeyFromPoint(point)

	return ExpandedPrivateKey{
		secret: secret,
		prefix: prefix,
		pub:    pub,
	}
}
