package bcrypt

import (
	"bytes"
	"testing"
)

func TestBase64Encode_SaltLength(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltLength)
	enc := base64Encode(salt)
	if len(enc) != encodedSaltLength {
		t.Errorf("16 salt bytes encoded to %d chars, want %d", len(enc), encodedSaltLength)
	}
}

func TestBase64Encode_SumLength(t *testing.T) {
	sum := bytes.Repeat([]byte{0x5C}, sumLength)
	enc := base64Encode(sum)
	if len(enc) != encodedSumLength {
		t.Errorf("23 sum bytes encoded to %d chars, want %d", len(enc), encodedSumLength)
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xFF},
		bytes.Repeat([]byte{0x00}, SaltLength),
		bytes.Repeat([]byte{0xFF}, SaltLength),
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10},
	}
	for _, in := range inputs {
		enc := base64Encode(in)
		got, err := base64Decode(enc, len(in))
		if err != nil {
			t.Fatalf("decode(%q): %v", enc, err)
		}
		if !bytes.Equal(got, in) {
			t.Errorf("round trip of % x gave % x", in, got)
		}
	}
}

func TestBase64Decode_InvalidCharacter(t *testing.T) {
	// '+' and '=' belong to the standard alphabet but not to bcrypt's.
	for _, s := range []string{"ab+c", "!!!!", "abc\x00", "ab=c"} {
		if _, err := base64Decode([]byte(s), 64); err == nil {
			t.Errorf("decode(%q) should fail", s)
		}
	}
}

func TestBase64Decode_MaxBytes(t *testing.T) {
	enc := base64Encode(bytes.Repeat([]byte{0x11}, SaltLength))
	if _, err := base64Decode(enc, SaltLength); err != nil {
		t.Fatalf("decode at exact limit: %v", err)
	}
	if _, err := base64Decode(enc, SaltLength-1); err == nil {
		t.Error("decode above limit should fail")
	}
}

func TestBase64Decode_KnownAlphabetOrder(t *testing.T) {
	// '.' is index 0 and '/' index 1 in the bcrypt alphabet; "...." must
	// therefore decode to zero bytes, which the standard alphabet would not.
	got, err := base64Decode([]byte("...."), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Errorf("decode(\"....\") = % x, want 00 00 00", got)
	}
}
