package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(secret, digest)
//	if errors.Is(err, hashing.ErrAlgorithmMismatch) {
//	    // digest carries a different version tag than this driver
//	}
//
// Structural digest failures surface as the bcrypt package's sentinels
// (bcrypt.ErrMalformedDigest, bcrypt.ErrUnsupportedVersion), which pass
// through this layer unchanged.
var (
	// ErrInvalidHash is returned when a digest's prefix is not a recognised
	// bcrypt version tag at all.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised digest string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a cost
	// below 4 or above 31, or an unknown version tag).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested driver has not
	// been registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil
	// [Hasher] is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned by a [Hasher]'s Check, NeedsRehash,
	// or Info method when the digest carries a different version tag than
	// the one implemented by that hasher.
	ErrAlgorithmMismatch = errors.New("hashing: digest was produced under a different version tag")
)
