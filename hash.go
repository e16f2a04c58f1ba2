package ed25519core

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// This file centralizes the two hash compositions RFC 8032 §5.1.6 and
// §5.1.7 demand for PureEdDSA, so that sign and verify cannot drift
// apart on the domain-separation choice: both PH (the prehash) and
// dom2(f,c) are the empty string for the bare Ed25519 variant, and
// neither call site is allowed to prepend anything else.

// nonceScalar computes r = SHA-512(prefix || M) reduced mod l, the
// deterministic per-message nonce used in signing (§5.1.6 step 2).
func nonceScalar(prefix, message []byte) *edwards25519.Scalar {
	h := sha512.New()
	h.Write(prefix)
	h.Write(message)
	digest := make([]byte, 0, sha512.Size)
	digest = h.Sum(digest)
	return edwards25519.NewScalar().SetUniformBytes(digest)
}

// challengeScalar computes k = SHA-512(R || A || M) reduced mod l, the
// per-(R,A,M) challenge shared by signing (§5.1.6 step 4) and
// verification (§5.1.7 step 2).
func challengeScalar(rEnc, aEnc, message []byte) *edwards25519.Scalar {
	h := sha512.New()
	h.Write(rEnc)
	h.Write(aEnc)
	h.Write(message)
	digest := make([]byte, 0, sha512.Size)
	digest = h.Sum(digest)
	return edwards25519.NewScalar().SetUniformBytes(digest)
}
