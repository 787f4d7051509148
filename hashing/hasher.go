package hashing

import "strings"

// DriverName identifies a bcrypt version driver. Using a named string type
// prevents accidental confusion with plain strings.
type DriverName string

const (
	// Driver2 selects the bare "2" driver (pre-revision digests; legacy
	// verification only).
	Driver2 DriverName = "2"
	// Driver2A selects the "2a" driver.
	Driver2A DriverName = "2a"
	// Driver2B selects the "2b" driver (recommended for new digests).
	Driver2B DriverName = "2b"
	// Driver2X selects the bug-compatible "2x" driver (legacy verification
	// only; never produce new 2x digests on purpose).
	Driver2X DriverName = "2x"
	// Driver2Y selects the "2y" driver (digests minted by fixed
	// crypt_blowfish builds, e.g. PHP's password_hash).
	Driver2Y DriverName = "2y"
)

// Hasher is the interface satisfied by all version drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext secret and returns the encoded digest.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same secret will produce different outputs.
	Make(secret string) (string, error)

	// Check verifies that secret matches the previously encoded digest.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the digest is structurally invalid or was produced
	// under a different version tag than this driver's.
	//
	// Comparison is performed in constant time to prevent timing attacks.
	Check(secret, digest string) (bool, error)

	// NeedsRehash returns true when the digest was produced with a cost
	// different from the driver's current configuration. Callers should
	// re-hash the secret on the next successful login when this returns
	// true.
	NeedsRehash(digest string) (bool, error)

	// Info extracts metadata from an encoded digest without verifying it.
	// Useful for auditing, migration tooling, or logging.
	Info(digest string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded digest.
type HashInfo struct {
	// Driver is the version driver that produced the digest.
	Driver DriverName

	// Params holds parameters extracted from the digest:
	//   "cost"    → int    (work factor, log2 of iteration count)
	//   "version" → string (version tag)
	Params map[string]any
}

// DetectDriver inspects a digest and returns the [DriverName] matching its
// version tag. It is a prefix check only and does not verify the digest.
//
// The second return value is false when the prefix is not a recognised
// bcrypt tag.
func DetectDriver(digest string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(digest, "$2a$"):
		return Driver2A, true
	case strings.HasPrefix(digest, "$2b$"):
		return Driver2B, true
	case strings.HasPrefix(digest, "$2x$"):
		return Driver2X, true
	case strings.HasPrefix(digest, "$2y$"):
		return Driver2Y, true
	// The bare tag is matched last so the lettered tags are never
	// mistaken for it.
	case strings.HasPrefix(digest, "$2$"):
		return Driver2, true
	default:
		return "", false
	}
}
