package bcrypt

import (
	"encoding/binary"

	"golang.org/x/crypto/blowfish"
)

const (
	// maxSecretLen is the number of secret bytes the key schedule consumes.
	// Bytes beyond this are ignored; this is the algorithm's documented
	// truncation point, not an error condition.
	maxSecretLen = 72

	// pWords is the number of Blowfish P-array words the key is XORed into
	// during each expand-key step.
	pWords = 18
)

// magicCipherData is the fixed 24-byte plaintext ("OrpheanBeholderScryDoubt")
// encrypted through the expanded key schedule to produce the digest bytes.
var magicCipherData = []byte{
	0x4f, 0x72, 0x70, 0x68,
	0x65, 0x61, 0x6e, 0x42,
	0x65, 0x68, 0x6f, 0x6c,
	0x64, 0x65, 0x72, 0x53,
	0x63, 0x72, 0x79, 0x44,
	0x6f, 0x75, 0x62, 0x74,
}

// deriveBlock runs the EksBlowfish key schedule and returns the 24 raw
// output bytes. Inputs are validated by the callers. The expand loop runs
// 2^cost iterations; latency scales accordingly.
func deriveBlock(secret []byte, salt *[SaltLength]byte, cost int, v Version) ([]byte, error) {
	key := expandSecret(secret, v)

	c, err := blowfish.NewSaltedCipher(key, salt[:])
	if err != nil {
		return nil, err
	}

	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(salt[:], c)
	}

	block := make([]byte, len(magicCipherData))
	copy(block, magicCipherData)
	for i := 0; i < len(block); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(block[i:i+8], block[i:i+8])
		}
	}
	return block, nil
}

// expandSecret prepares the key bytes fed to the Blowfish expand steps,
// applying the version-specific quirks: truncation at 72 bytes, the trailing
// NUL for lettered revisions, and the 2x sign-extension bug.
func expandSecret(secret []byte, v Version) []byte {
	info := versions[v]
	if len(secret) > maxSecretLen {
		secret = secret[:maxSecretLen]
	}
	key := make([]byte, 0, maxSecretLen+1)
	key = append(key, secret...)
	if info.nulTerminate || len(key) == 0 {
		// Bare "2" keys an empty secret as a single NUL byte: the original
		// C code always reads at least the string terminator.
		key = append(key, 0)
	}
	if info.signExtend {
		key = signExtendKey(key)
	}
	return key
}

// signExtendKey reproduces the crypt_blowfish sign-extension bug preserved
// under the "2x" tag: while packing secret bytes into the 18 P-array words,
// bytes >= 0x80 are sign-extended before being ORed into the accumulating
// word, clobbering previously shifted-in bits.
//
// The expand steps consume the key only as those 18 cyclic words, so the
// buggy stream is materialised here as 18 big-endian words (72 bytes, a
// whole number of cycles) and handed to the unmodified Blowfish expand
// functions, which reassemble it bit-exactly.
func signExtendKey(key []byte) []byte {
	out := make([]byte, pWords*4)
	j := 0
	for i := 0; i < pWords; i++ {
		var w uint32
		for k := 0; k < 4; k++ {
			w = w<<8 | uint32(int32(int8(key[j])))
			j++
			if j >= len(key) {
				j = 0
			}
		}
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}
