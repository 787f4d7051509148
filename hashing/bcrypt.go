package hashing

import (
	"fmt"

	"github.com/bwdmr/vapor/bcrypt"
)

// DefaultCost is the recommended work factor for new digests.
// At cost 12, hashing takes approximately 250 ms on a modern server CPU.
//
// Increase this value as hardware improves; aim to keep hashing time
// between 100 ms and 500 ms for your deployment environment.
const DefaultCost = bcrypt.DefaultCost

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	// Default: [DefaultCost] (12).
	Cost int

	// Version is the tag new digests are minted under.
	// Default: [bcrypt.DefaultVersion] ("2b").
	Version bcrypt.Version
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultCost] and the
// "2b" version tag.
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultCost, Version: bcrypt.DefaultVersion}
}

// BcryptHasher hashes secrets under a single bcrypt version tag.
//
// One hasher per configured {version, cost} pair; the [Manager] registers
// one hasher per version so mixed digest populations (e.g. "2y" digests
// imported from a PHP system alongside native "2b" ones) can be verified
// side by side.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost    int
	version bcrypt.Version
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// A zero Version selects [bcrypt.DefaultVersion]. Returns
// [ErrInvalidOption] if Cost is outside [bcrypt.MinCost, bcrypt.MaxCost] or
// the version tag is unknown.
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Version == "" {
		opts.Version = bcrypt.DefaultVersion
	}
	if err := bcrypt.CheckCost(opts.Cost); err != nil {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if _, err := bcrypt.ParseVersion(string(opts.Version)); err != nil {
		return nil, fmt.Errorf("%w: unknown bcrypt version %q", ErrInvalidOption, opts.Version)
	}
	return &BcryptHasher{cost: opts.Cost, version: opts.Version}, nil
}

// Driver returns the version tag this hasher mints and verifies.
func (h *BcryptHasher) Driver() DriverName { return DriverName(h.version) }

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Version returns the configured version tag.
func (h *BcryptHasher) Version() bcrypt.Version { return h.version }

// Make hashes secret and returns the digest (e.g., "$2b$12$...").
// A fresh 128-bit random salt is generated internally.
//
// Security note: bcrypt truncates secrets longer than 72 bytes; bytes
// beyond that never influence the digest.
func (h *BcryptHasher) Make(secret string) (string, error) {
	digest, err := bcrypt.HashVersion([]byte(secret), h.version, h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash secret: %w", err)
	}
	return digest, nil
}

// Check verifies that secret matches digest. Returns (false, nil) on a
// mismatch; a digest under a different version tag is an
// [ErrAlgorithmMismatch] error, not a silent false.
func (h *BcryptHasher) Check(secret, digest string) (bool, error) {
	if err := h.checkTag(digest); err != nil {
		return false, err
	}
	return bcrypt.Verify([]byte(secret), digest)
}

// NeedsRehash returns true if the work factor encoded in digest differs
// from the hasher's configured cost. A lower stored cost means the digest
// is weaker than the current configuration; a higher stored cost means the
// configuration was intentionally dialled back (rare but handled).
func (h *BcryptHasher) NeedsRehash(digest string) (bool, error) {
	if err := h.checkTag(digest); err != nil {
		return false, err
	}
	cost, err := bcrypt.Cost(digest)
	if err != nil {
		return false, err
	}
	return cost != h.cost, nil
}

// Info extracts the version tag and work factor from digest.
//
// Returned [HashInfo].Params:
//   - "cost"    → int
//   - "version" → string
func (h *BcryptHasher) Info(digest string) (HashInfo, error) {
	if err := h.checkTag(digest); err != nil {
		return HashInfo{}, err
	}
	d, err := bcrypt.ParseDigest(digest)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverName(d.Version),
		Params: map[string]any{
			"cost":    d.Cost,
			"version": string(d.Version),
		},
	}, nil
}

// checkTag rejects digests minted under a tag other than this driver's.
func (h *BcryptHasher) checkTag(digest string) error {
	d, ok := DetectDriver(digest)
	if !ok {
		return ErrInvalidHash
	}
	if d != h.Driver() {
		return fmt.Errorf("%w: digest is %q, driver is %q", ErrAlgorithmMismatch, d, h.Driver())
	}
	return nil
}
