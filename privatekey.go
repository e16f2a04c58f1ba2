package ed25519core

import "filippo.io/edwards25519"

// ExpandedPrivateKey is the immutable triple (s, prefix, A) produced by
// Seed.Expand: the secret scalar s, the secret nonce prefix, and the
// public key A = [s]B cached at expansion time. The cached A is always
// the key s actually produces — there is no constructor or option that
// lets a caller pair a different public key with s. Binding any other
// A into a signature over repeated messages would let an attacker
// recover s from two signatures (RFC 8032's scalar-recovery pitfall);
// removing the parameter entirely closes that off at the API level.
type ExpandedPrivateKey struct {
	secret *edwards25519.Scalar
	prefix [32]byte
	pub    PublicKey
}

// PublicKey returns the public key cached at expansion time.
func (k ExpandedPrivateKey) PublicKey() PublicKey {
	return k.pub
}

// Sign implements RFC 8032 §5.1.6 for the PureEdDSA variant: it derives
// the per-message nonce r from SHA-512(prefix || message), computes
// R = [r]B, folds in the challenge k = SHA-512(R || A || message), and
// returns S = r + k*s mod l. Signing is deterministic — the same
// (seed, message) pair always yields the same signature — and uses
// only constant-time arithmetic-layer primitives: fixed-base scalar
// multiplication and scalar arithmetic, never the variable-time
// routines reserved for verification.
//
// The public key bound into the signature is always k.pub; there is no
// way to override it from the call site.
func (k ExpandedPrivateKey) Sign(message []byte) Signature {
	r := nonceScalar(k.prefix[:], message)

	R := new(edwards25519.Point).ScalarBaseMult(r)
	var rEnc [32]byte
	copy(rEnc[:], R.Bytes())

	challenge := challengeScalar(rEnc[:], k.pub.enc[:], message)

	s := edwards25519.NewScalar().MultiplyAdd(challenge, k.secret, r)

	return Signature{r: rEnc, s: s}
}
