// Package ed25519core implements the PureEdDSA signature scheme over
// edwards25519 as specified in RFC 8032, built on top of
// filippo.io/edwards25519 for curve arithmetic and crypto/sha512 for
// hashing.
//
// Only bare Ed25519 is implemented: no Ed25519ph (prehash) or
// Ed25519ctx (context) variant, no batch verification, and no
// deterministic key derivation from a seed phrase. Verification uses
// the strict, cofactor-less group equation with byte-exact comparison
// of the recomputed R; it does not implement the ZIP 215 permissive
// variant.
//
// Typical use:
//
//	seed, err := ed25519core.GenerateSeed(rand.Reader)
//	priv := seed.Expand()
//	sig := priv.Sign(message)
//	ok := priv.PublicKey().Verify(message, sig)
package ed25519core
