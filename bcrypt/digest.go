package bcrypt

import (
	"fmt"
	"strings"
)

const (
	// SaltLength is the raw salt size in bytes.
	SaltLength = 16

	// sumLength is the number of raw key-schedule output bytes kept in the
	// digest. The schedule produces 24 bytes; the last one is discarded
	// before encoding.
	sumLength = 23

	encodedSaltLength = 22
	encodedSumLength  = 31
)

// Digest is the parsed form of a bcrypt digest string. It is produced once
// by the hash engine or by [ParseDigest] and never mutated afterwards.
type Digest struct {
	Version Version
	Cost    int
	Salt    [SaltLength]byte
	Sum     [sumLength]byte
}

// ParseDigest parses and validates a digest of the form
//
//	$<version>$<2-digit cost>$<22-char salt><31-char hash>
//
// Structural violations return [ErrMalformedDigest]; a version tag outside
// the five recognised tags returns [ErrUnsupportedVersion].
func ParseDigest(digest string) (*Digest, error) {
	if len(digest) < 2 || digest[0] != '$' {
		return nil, fmt.Errorf("%w: missing leading '$'", ErrMalformedDigest)
	}
	end := strings.IndexByte(digest[1:], '$')
	if end < 0 {
		return nil, fmt.Errorf("%w: missing version delimiter", ErrMalformedDigest)
	}
	v, err := ParseVersion(digest[1 : 1+end])
	if err != nil {
		return nil, err
	}
	info := versions[v]

	costStart := 2 + len(v) // past "$<tag>$"
	if len(digest) < costStart+3 {
		return nil, fmt.Errorf("%w: truncated cost field", ErrMalformedDigest)
	}
	c1, c2 := digest[costStart], digest[costStart+1]
	if c1 < '0' || c1 > '9' || c2 < '0' || c2 > '9' {
		return nil, fmt.Errorf("%w: cost field must be exactly two ASCII digits", ErrMalformedDigest)
	}
	if digest[costStart+2] != '$' {
		return nil, fmt.Errorf("%w: missing salt delimiter", ErrMalformedDigest)
	}
	cost := int(c1-'0')*10 + int(c2-'0')
	if cost < MinCost || cost > MaxCost {
		return nil, fmt.Errorf("%w: cost %02d is outside [%d, %d]",
			ErrMalformedDigest, cost, MinCost, MaxCost)
	}

	if len(digest) != info.digestLen {
		return nil, fmt.Errorf("%w: %q digests must be %d characters, got %d",
			ErrMalformedDigest, v, info.digestLen, len(digest))
	}

	saltStart := costStart + 3
	rawSalt, err := base64Decode([]byte(digest[saltStart:saltStart+encodedSaltLength]), SaltLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
	if len(rawSalt) != SaltLength {
		return nil, fmt.Errorf("%w: salt field decodes to %d bytes, want %d",
			ErrMalformedDigest, len(rawSalt), SaltLength)
	}
	rawSum, err := base64Decode([]byte(digest[saltStart+encodedSaltLength:]), sumLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
	if len(rawSum) != sumLength {
		return nil, fmt.Errorf("%w: hash field decodes to %d bytes, want %d",
			ErrMalformedDigest, len(rawSum), sumLength)
	}

	d := &Digest{Version: v, Cost: cost}
	copy(d.Salt[:], rawSalt)
	copy(d.Sum[:], rawSum)
	return d, nil
}

// String serialises the digest back to its textual form. The cost is
// zero-padded to two digits and the total length always matches the
// version's mandated length, so ParseDigest(d.String()) round-trips.
func (d *Digest) String() string {
	info := versions[d.Version]
	b := make([]byte, 0, info.digestLen)
	b = append(b, '$')
	b = append(b, d.Version...)
	b = append(b, '$', '0'+byte(d.Cost/10), '0'+byte(d.Cost%10), '$')
	b = append(b, base64Encode(d.Salt[:])...)
	b = append(b, base64Encode(d.Sum[:])...)
	return string(b)
}

// saltPrefix returns the digest prefix through the salt field: the version
// tag, the cost, and the 21 salt characters that carry whole 6-bit groups.
// The prefix length is version-dependent: 28 characters for lettered tags,
// 27 for bare "2".
func saltPrefix(digest string) (string, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return "", err
	}
	return digest[:versions[d.Version].saltPrefixLen], nil
}

// ExtractSalt returns the salt prefix of digest, everything a re-hash of a
// candidate secret needs to be parameter-compatible with the stored digest.
// It fails with [ErrMalformedDigest] under the same conditions as
// [ParseDigest].
func ExtractSalt(digest string) (string, error) {
	return saltPrefix(digest)
}

// ExtractSaltInto writes the salt prefix of digest into dst and returns the
// number of bytes written. Because the prefix length is version-dependent,
// the capacity check is part of the contract: an undersized dst fails with
// [ErrBufferTooSmall] rather than truncating.
func ExtractSaltInto(dst []byte, digest string) (int, error) {
	prefix, err := saltPrefix(digest)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(prefix) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d",
			ErrBufferTooSmall, len(prefix), len(dst))
	}
	return copy(dst, prefix), nil
}

// Cost extracts the cost factor embedded in digest.
func Cost(digest string) (int, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return 0, err
	}
	return d.Cost, nil
}
