package hashing

import (
	"fmt"
	"sync"

	"github.com/bwdmr/vapor/bcrypt"
)

// Manager is a thread-safe registry and dispatcher of bcrypt version
// drivers.
//
// Register one [Hasher] per version tag, nominate a default, and then call
// [Manager.Make] / [Manager.Check] / [Manager.NeedsRehash] through the
// Manager for all day-to-day hashing operations. [Manager.CheckWithDetect]
// routes a stored digest to whichever registered driver minted it, which is
// what keeps mixed digest populations verifiable during a version or cost
// migration.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver)
// while allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant that registers
// all five version drivers.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with all five version drivers
// registered at [DefaultCost]. The default driver is [Driver2B]; the
// legacy drivers ("2", "2a", "2x", "2y") exist so previously stored
// digests keep verifying while [Manager.NeedsRehash] steers them towards
// fresh "2b" digests.
//
// This is the recommended starting point for most applications.
//
//	m, err := hashing.NewDefaultManager()
//	digest, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	m := NewManager(Driver2B)
	for _, d := range []DriverName{Driver2, Driver2A, Driver2B, Driver2X, Driver2Y} {
		h, err := NewBcryptHasher(BcryptOptions{Cost: DefaultCost, Version: bcrypt.Version(d)})
		if err != nil {
			return nil, fmt.Errorf("hashing: failed to create default %q hasher: %w", d, err)
		}
		if err := m.RegisterDriver(d, h); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RegisterDriver adds or replaces a named hasher in the Manager.
// It is safe to call RegisterDriver while other goroutines are using the
// Manager.
//
// Custom drivers (e.g. a pre-hashing wrapper) only need to implement the
// [Hasher] interface:
//
//	m.RegisterDriver("2b-sha256", &prehashingHasher{})
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make],
// [Manager.Check], and [Manager.NeedsRehash]. The named driver must
// already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes secret using the default driver.
func (m *Manager) Make(secret string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(secret)
}

// Check verifies secret against digest using the default driver.
//
// To verify a digest minted under a non-default version, use
// [Manager.CheckWithDetect] (or [Manager.Driver] directly).
func (m *Manager) Check(secret, digest string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(secret, digest)
}

// CheckWithDetect verifies secret against digest by routing to the driver
// matching the digest's version tag. This is the right entry point when
// digests from multiple versions coexist (e.g., "2y" digests imported from
// a PHP system, or historical "2a"/"2x" digests).
//
// Returns [ErrDriverNotFound] if the detected driver is not registered.
// Returns [ErrInvalidHash] if the digest prefix is unrecognised.
func (m *Manager) CheckWithDetect(secret, digest string) (bool, error) {
	h, err := m.resolveByDigest(digest)
	if err != nil {
		return false, err
	}
	return h.Check(secret, digest)
}

// NeedsRehash reports whether digest should be re-hashed.
//
// It returns true when:
//  1. The digest was minted under a different version tag than the current
//     default, OR
//  2. The digest carries the default tag but a different cost than the
//     default driver's configuration.
//
// On the next successful login, callers should call [Manager.Make] and
// persist the new digest when this returns true.
func (m *Manager) NeedsRehash(digest string) (bool, error) {
	detected, ok := DetectDriver(digest)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	// Different version tag → always rehash to the current default.
	if detected != def {
		return true, nil
	}

	// Same tag: delegate to the driver to compare the cost.
	h, err := m.Driver(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(digest)
}

// Info extracts metadata from digest using the default driver.
//
// To inspect a digest minted under a different version, use
// [Manager.InfoWithDetect].
func (m *Manager) Info(digest string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(digest)
}

// InfoWithDetect extracts metadata from digest by routing to the driver
// matching its version tag.
func (m *Manager) InfoWithDetect(digest string) (HashInfo, error) {
	h, err := m.resolveByDigest(digest)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(digest)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByDigest(digest string) (Hasher, error) {
	name, ok := DetectDriver(digest)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Driver(name)
}
