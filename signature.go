package ed25519core

import (
	"fmt"

	"filippo.io/edwards25519"
)

// SignatureSize is the length in octets of an encoded Ed25519 signature.
const SignatureSize = 64

// Signature is an immutable (R, S) pair as produced by sign or decoded
// from the wire. R is stored as its 32 compressed octets and is not
// validated as a curve point at construction — invalid R surfaces as a
// verification failure, not a decode error (RFC 8032 §5.1.7 step 1). S
// is always a canonical scalar, 0 <= S < l.
type Signature struct {
	r [32]byte
	s *edwards25519.Scalar
}

// DecodeSignature parses the 64-octet wire encoding R || S. It fails
// with an error matching ErrMalformedSignature if b is not exactly
// SignatureSize octets, or if the S half does not encode a canonical
// scalar strictly less than the group order l.
func DecodeSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, wrapErr(KindMalformedSignature,
			fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(b)))
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[32:64])
	if err != nil {
		return Signature{}, wrapErr(KindMalformedSignature, err)
	}

	var sig Signature
	copy(sig.r[:], b[:32])
	sig.s = s
	return sig, nil
}

// Bytes encodes the signature as R || S, 64 octets.
func (sig Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out[:32], sig.r[:])
	copy(out[32:], sig.s.Bytes())
	return out
}
