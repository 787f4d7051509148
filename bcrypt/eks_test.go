package bcrypt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

// packKeyWords is the straight (bug-free) word packing the Blowfish expand
// functions perform internally: big-endian 32-bit accumulation cycling
// over the key bytes.
func packKeyWords(key []byte) []byte {
	out := make([]byte, pWords*4)
	j := 0
	for i := 0; i < pWords; i++ {
		var w uint32
		for k := 0; k < 4; k++ {
			w = w<<8 | uint32(key[j])
			j++
			if j >= len(key) {
				j = 0
			}
		}
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

func TestSignExtendKey_ASCIIMatchesStraightPacking(t *testing.T) {
	// Bytes below 0x80 never trigger the sign extension, so the buggy
	// stream must equal the straight packing bit for bit.
	key := append([]byte("correct horse battery staple"), 0)
	if got, want := signExtendKey(key), packKeyWords(key); !bytes.Equal(got, want) {
		t.Errorf("ASCII key: buggy stream differs from straight packing\ngot  % x\nwant % x", got, want)
	}
}

func TestSignExtendKey_HighBitDiffers(t *testing.T) {
	key := append([]byte{0xA3, 'a', 'b'}, 0)
	if bytes.Equal(signExtendKey(key), packKeyWords(key)) {
		t.Error("key byte 0xA3 should corrupt the packed words")
	}
}

func TestSignExtendKey_HighBitClobbersEarlierBits(t *testing.T) {
	// The sign-extended byte is ORed into the accumulating word, forcing
	// every bit above it to 1. The first word here must be 0xFFFFFFA3
	// regardless of the 'a' packed before the 0xA3.
	key := []byte{'a', 0xA3, 0xA3, 0xA3}
	words := signExtendKey(key)
	if got := binary.BigEndian.Uint32(words[:4]); got != 0xFFFFFFA3 {
		t.Errorf("first buggy word = %#08x, want 0xffffffa3", got)
	}
}

func TestExpandSecret_TruncatesAt72(t *testing.T) {
	long := []byte(strings.Repeat("x", 72) + "tail-that-must-be-ignored")
	short := []byte(strings.Repeat("x", 72))
	if !bytes.Equal(expandSecret(long, Version2B), expandSecret(short, Version2B)) {
		t.Error("bytes beyond 72 must not reach the key schedule")
	}
}

func TestExpandSecret_NulTermination(t *testing.T) {
	secret := []byte("s3cret")
	lettered := expandSecret(secret, Version2A)
	if len(lettered) != len(secret)+1 || lettered[len(lettered)-1] != 0 {
		t.Errorf("lettered versions must append a NUL, got % x", lettered)
	}
	bare := expandSecret(secret, Version2)
	if !bytes.Equal(bare, secret) {
		t.Errorf("bare \"2\" must key the raw secret, got % x", bare)
	}
}

func TestExpandSecret_EmptySecret(t *testing.T) {
	for _, v := range []Version{Version2, Version2A, Version2B} {
		key := expandSecret(nil, v)
		if len(key) == 0 {
			t.Errorf("version %q: empty secret must yield a non-empty key", v)
		}
	}
}

func TestDeriveBlock_DeterministicAndSecretSensitive(t *testing.T) {
	salt := [SaltLength]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	a, err := deriveBlock([]byte("alpha"), &salt, MinCost, Version2B)
	if err != nil {
		t.Fatal(err)
	}
	b, err := deriveBlock([]byte("alpha"), &salt, MinCost, Version2B)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same inputs must derive the same block")
	}
	if len(a) != 24 {
		t.Errorf("block length = %d, want 24", len(a))
	}

	c, err := deriveBlock([]byte("beta"), &salt, MinCost, Version2B)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, c) {
		t.Error("different secrets must derive different blocks")
	}

	d, err := deriveBlock([]byte("alpha"), &salt, MinCost+1, Version2B)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, d) {
		t.Error("different costs must derive different blocks")
	}
}

// failingReader simulates an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestReadSalt_EntropyUnavailable(t *testing.T) {
	_, err := readSalt(failingReader{})
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("expected ErrEntropyUnavailable, got %v", err)
	}
}
