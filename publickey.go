package ed25519core

import (
	"bytes"
	"fmt"

	"filippo.io/edwards25519"
)

// PublicKeySize is the length in octets of an encoded Ed25519 public key.
const PublicKeySize = 32

// PublicKey is an immutable pair (A, Aenc): the decompressed Edwards
// point A and its canonical 32-octet compressed encoding. The
// decompressed form is cached on decode so Verify never pays a second
// decompression for the same key.
type PublicKey struct {
	point *edwards25519.Point
	enc   [32]byte
}

func newPublicKeyFromPoint(p *edwards25519.Point) PublicKey {
	var pk PublicKey
	pk.point = p
	copy(pk.enc[:], p.Bytes())
	return pk
}

// NewPublicKey decodes a 32-octet compressed Edwards point. It fails
// with an error matching ErrInvalidPublicKey if b is not exactly
// PublicKeySize octets, or if the bytes do not encode a valid point
// (a canonical y-coordinate with a recoverable x).
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, wrapErr(KindInvalidPublicKey,
			fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(b)))
	}

	point, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return PublicKey{}, wrapErr(KindInvalidPublicKey, err)
	}
	if !bytes.Equal(point.Bytes(), b) {
		return PublicKey{}, wrapErr(KindInvalidPublicKey,
			fmt.Errorf("public key is not a canonical point encoding"))
	}

	var pk PublicKey
	pk.point = point
	copy(pk.enc[:], b)
	return pk, nil
}

// Bytes returns a defensive copy of the canonical 32-octet compression.
func (pk PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, pk.enc[:])
	return out
}

// Equal reports whether pk and other have the same compressed encoding.
func (pk PublicKey) Equal(other PublicKey) bool {
	return pk.enc == other.enc
}

// Verify implements RFC 8032 §5.1.7 for the PureEdDSA variant: it
// recomputes the challenge k = SHA-512(R || A || M) mod l and checks
// the strict group equation [S]B = R + [k]A by testing
// [S]B - [k]A ?= R as compressed bytes, using the arithmetic layer's
// variable-time double-scalar multiplication (safe here because every
// input is public). No cofactor clearing is applied: this is the
// "strict" Ed25519 policy, not the ZIP 215-style permissive one.
//
// Verify never returns an error. Any malformed input — a zero-value
// Signature or PublicKey, or an R that does not correspond to a point
// on the curve — makes Verify return false.
func (pk PublicKey) Verify(message []byte, sig Signature) bool {
	if pk.point == nil || sig.s == nil {
		return false
	}
	negA := new(edwards25519.Point).Negate(pk.point)

	k := challengeScalar(sig.r[:], pk.enc[:], message)

	rPrime := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, negA, sig.s)

	return bytes.Equal(rPrime.Bytes(), sig.r[:])
}
