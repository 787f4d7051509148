package bcrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

const (
	// MinCost is the lowest accepted cost factor.
	MinCost = 4
	// MaxCost is the highest accepted cost factor. Each increment doubles
	// the key-schedule work, so the top of the range is measured in hours.
	MaxCost = 31
	// DefaultCost is the recommended work factor for newly produced hashes,
	// roughly 250 ms on a modern server CPU. Increase it as hardware
	// improves; aim to keep hashing time between 100 ms and 500 ms.
	DefaultCost = 12
)

// CheckCost validates a cost factor against [MinCost] and [MaxCost].
// Returns [ErrInvalidCost] when out of range.
func CheckCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: cost %d must be in [%d, %d]",
			ErrInvalidCost, cost, MinCost, MaxCost)
	}
	return nil
}

// GenerateSalt returns 16 cryptographically random salt bytes.
// Fails with [ErrEntropyUnavailable] if the system random source errors.
func GenerateSalt() ([SaltLength]byte, error) {
	return readSalt(rand.Reader)
}

func readSalt(r io.Reader) ([SaltLength]byte, error) {
	var salt [SaltLength]byte
	if _, err := io.ReadFull(r, salt[:]); err != nil {
		return salt, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return salt, nil
}

// Hash derives a digest from secret at the given cost under
// [DefaultVersion], generating a fresh random salt.
//
// Secrets longer than 72 bytes are truncated by the key schedule; the
// remaining bytes never influence the output.
func Hash(secret []byte, cost int) (string, error) {
	return HashVersion(secret, DefaultVersion, cost)
}

// HashVersion is [Hash] with an explicit version tag, for producing digests
// interoperable with systems pinned to an older revision.
func HashVersion(secret []byte, version Version, cost int) (string, error) {
	if _, err := ParseVersion(string(version)); err != nil {
		return "", err
	}
	if err := CheckCost(cost); err != nil {
		return "", err
	}
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	d, err := newDigest(secret, version, cost, salt)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// HashWithSalt derives a digest deterministically from a caller-supplied
// salt. This is how verification re-hashes a candidate secret with the
// parameters of a stored digest; it is also useful for reproducing known
// test vectors. The salt must be exactly [SaltLength] bytes
// ([ErrInvalidSalt] otherwise) and is used as-is.
func HashWithSalt(secret []byte, version Version, cost int, salt []byte) (string, error) {
	if _, err := ParseVersion(string(version)); err != nil {
		return "", err
	}
	if err := CheckCost(cost); err != nil {
		return "", err
	}
	if len(salt) != SaltLength {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidSalt, len(salt))
	}
	var s [SaltLength]byte
	copy(s[:], salt)
	d, err := newDigest(secret, version, cost, s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// newDigest runs the key schedule over validated parameters and assembles
// the digest, keeping the first 23 of the 24 output bytes.
func newDigest(secret []byte, version Version, cost int, salt [SaltLength]byte) (*Digest, error) {
	block, err := deriveBlock(secret, &salt, cost, version)
	if err != nil {
		return nil, err
	}
	d := &Digest{Version: version, Cost: cost, Salt: salt}
	copy(d.Sum[:], block[:sumLength])
	return d, nil
}

// Verify re-derives a digest from secret using the version, cost, and salt
// embedded in stored, and compares the hash bytes in constant time.
//
// A mismatch is the normal (false, nil) result. An unparsable stored digest
// is an error; it is never silently reported as "does not match".
func Verify(secret []byte, stored string) (bool, error) {
	d, err := ParseDigest(stored)
	if err != nil {
		return false, err
	}
	other, err := newDigest(secret, d.Version, d.Cost, d.Salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(other.Sum[:], d.Sum[:]) == 1, nil
}
