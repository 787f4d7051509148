package bcrypt

import "fmt"

// Version is a bcrypt version tag as it appears between the first two '$'
// delimiters of a digest. Using a named string type prevents accidental
// confusion with plain strings.
type Version string

const (
	// Version2 is the original format without a minor revision letter.
	// Its digests are one character shorter because the tag is "2" rather
	// than a two-character tag, and the secret is keyed without a trailing
	// NUL byte.
	Version2 Version = "2"

	// Version2A is the first lettered revision; the secret is keyed with a
	// trailing NUL byte.
	Version2A Version = "2a"

	// Version2B is the OpenBSD revision that pinned down the 72-byte secret
	// truncation. It is the default for newly produced digests.
	Version2B Version = "2b"

	// Version2X marks digests produced by crypt_blowfish builds carrying
	// the sign-extension bug. The bug is reproduced byte-exactly here so
	// that such digests remain verifiable; never select 2x for new hashes.
	Version2X Version = "2x"

	// Version2Y marks digests produced by fixed crypt_blowfish builds.
	// Computationally identical to 2a/2b.
	Version2Y Version = "2y"
)

// DefaultVersion is used by [Hash] for newly produced digests.
const DefaultVersion = Version2B

// versionInfo captures the per-tag format and key-schedule quirks. The five
// recognised tags form a closed set; everything length- or quirk-dependent
// in the codec and the key schedule consults this table instead of
// re-deriving lengths from prefixes.
type versionInfo struct {
	// saltPrefixLen is the length of the digest prefix returned by
	// [ExtractSalt]: '$' + tag + '$' + two cost digits + '$' + the 21 salt
	// characters that carry whole 6-bit groups.
	saltPrefixLen int

	// digestLen is the mandated total digest length for the tag.
	digestLen int

	// nulTerminate appends a NUL byte to the secret before key expansion.
	// All lettered revisions do this; the bare "2" tag does not.
	nulTerminate bool

	// signExtend applies the crypt_blowfish "$2x$" sign-extension bug to
	// the secret's key-schedule words.
	signExtend bool
}

var versions = map[Version]versionInfo{
	Version2:  {saltPrefixLen: 27, digestLen: 59, nulTerminate: false, signExtend: false},
	Version2A: {saltPrefixLen: 28, digestLen: 60, nulTerminate: true, signExtend: false},
	Version2B: {saltPrefixLen: 28, digestLen: 60, nulTerminate: true, signExtend: false},
	Version2X: {saltPrefixLen: 28, digestLen: 60, nulTerminate: true, signExtend: true},
	Version2Y: {saltPrefixLen: 28, digestLen: 60, nulTerminate: true, signExtend: false},
}

// ParseVersion validates a version tag string.
// Returns [ErrUnsupportedVersion] for anything outside the five known tags.
func ParseVersion(tag string) (Version, error) {
	v := Version(tag)
	if _, ok := versions[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, tag)
	}
	return v, nil
}
