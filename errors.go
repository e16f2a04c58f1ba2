package ed25519core

import "fmt"

// Kind identifies a class of decode failure so callers can distinguish
// them with errors.Is instead of matching on message text.
type Kind int

const (
	// KindMalformedSignature means a 64-octet signature failed to decode:
	// wrong length, or its S half encodes a value >= the group order.
	KindMalformedSignature Kind = iota
	// KindInvalidPublicKey means a 32-octet public key failed to decode:
	// wrong length, or the bytes are not a valid compressed Edwards point.
	KindInvalidPublicKey
	// KindInvalidSeed means a private seed was not exactly 32 octets.
	KindInvalidSeed
)

func (k Kind) String() string {
	switch k {
	case KindMalformedSignature:
		return "malformed signature"
	case KindInvalidPublicKey:
		return "invalid public key"
	case KindInvalidSeed:
		return "invalid seed"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every decode boundary in this
// package. Its Kind is stable and meant to be matched with errors.Is
// against the package-level sentinels below; Unwrap exposes the
// underlying cause, if any, for diagnostics.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("ed25519core: %s: %v", e.Kind, e.err)
	}
	return fmt.Sprintf("ed25519core: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same Kind, ignoring
// the wrapped cause. This lets callers write errors.Is(err, ErrInvalidSeed).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for the three decode boundaries named in spec.md §7.
// Match with errors.Is; use errors.As(err, &*Error) to inspect the cause.
var (
	ErrMalformedSignature = &Error{Kind: KindMalformedSignature}
	ErrInvalidPublicKey   = &Error{Kind: KindInvalidPublicKey}
	ErrInvalidSeed        = &Error{Kind: KindInvalidSeed}
)

func wrapErr(kind Kind, cause error) error {
	return &Error{Kind: kind, err: cause}
}
