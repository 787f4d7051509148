package bcrypt

import "errors"

// Sentinel errors returned by bcrypt operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := bcrypt.Verify(secret, stored)
//	if errors.Is(err, bcrypt.ErrMalformedDigest) {
//	    // the stored digest is structurally broken, not a mismatch
//	}
var (
	// ErrInvalidCost is returned when a cost factor falls outside
	// [MinCost, MaxCost]. The range is checked before any cryptographic
	// work begins.
	ErrInvalidCost = errors.New("bcrypt: cost is outside the allowed range")

	// ErrMalformedDigest is returned when a digest string cannot be parsed:
	// missing or misplaced '$' delimiters, a non-numeric or out-of-range
	// cost field, salt characters outside the bcrypt base64 alphabet, or a
	// total length that does not match the version's mandated length.
	ErrMalformedDigest = errors.New("bcrypt: malformed digest string")

	// ErrUnsupportedVersion is returned when a digest's version tag is not
	// one of the five recognised tags ("2", "2a", "2b", "2x", "2y").
	ErrUnsupportedVersion = errors.New("bcrypt: unsupported version tag")

	// ErrBufferTooSmall is returned by [ExtractSaltInto] when the
	// destination buffer cannot hold the version-specific salt prefix.
	// The codec never truncates silently.
	ErrBufferTooSmall = errors.New("bcrypt: destination buffer too small for salt prefix")

	// ErrEntropyUnavailable is returned when the system random source fails
	// to supply the 16 salt bytes needed for a fresh hash.
	ErrEntropyUnavailable = errors.New("bcrypt: random source failed")

	// ErrInvalidSalt is returned when a caller-supplied salt is not exactly
	// [SaltLength] bytes.
	ErrInvalidSalt = errors.New("bcrypt: salt must be exactly 16 bytes")
)
