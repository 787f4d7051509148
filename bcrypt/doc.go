// Package bcrypt implements the bcrypt adaptive password-hashing scheme:
// the EksBlowfish key schedule, the modular-crypt digest format with all
// five historical version tags, and salt extraction for
// parameter-compatible re-hashing.
//
// # Why another bcrypt
//
// golang.org/x/crypto/bcrypt produces and verifies "$2a$" digests only.
// This package speaks the full family ("2", "2a", "2b", "2x", "2y"),
// including the crypt_blowfish sign-extension bug preserved under "2x",
// so digests minted by PHP, crypt_blowfish, or pre-2a systems remain
// verifiable. The cipher core is still golang.org/x/crypto/blowfish; only
// the key preparation and the codec differ per version.
//
// # Quick start
//
//	digest, err := bcrypt.Hash([]byte("my-secret"), bcrypt.DefaultCost)
//	if err != nil { ... }
//
//	ok, err := bcrypt.Verify([]byte("my-secret"), digest)
//	// ok == true; a mismatch is (false, nil), never an error
//
// # Digest format
//
//	$<version>$<2-digit cost>$<22-char salt><31-char hash>
//
// Lettered versions serialise to exactly 60 characters; the bare "2" tag to
// 59. All parameters needed for verification are embedded in the digest, so
// no external configuration is required.
//
// # Cost selection
//
// Cost is the log2 of the key-schedule iteration count: each increment
// doubles hashing latency. The slowness is the caller's backpressure knob
// against brute force. There is no cancellation inside
// the key schedule; pick the cost conservatively rather than imposing a
// timeout shorter than its expected latency.
//
// # Thread safety
//
// All functions are stateless and safe for concurrent use. The only shared
// resource is the system random source used for salt generation.
package bcrypt
