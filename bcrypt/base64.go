package bcrypt

import (
	"encoding/base64"
	"fmt"
)

// bcrypt uses its own base64 alphabet, shared with crypt(3) but ordered
// differently from RFC 4648. The bit packing is standard, so the stdlib
// encoder works once the alphabet is swapped and padding is handled.
const encodeTable = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var bcEncoding = base64.NewEncoding(encodeTable)

// base64Encode encodes src into the bcrypt alphabet without padding.
// 16 salt bytes encode to exactly 22 characters, 23 digest bytes to 31.
func base64Encode(src []byte) []byte {
	n := bcEncoding.EncodedLen(len(src))
	dst := make([]byte, n)
	bcEncoding.Encode(dst, src)
	for n > 0 && dst[n-1] == '=' {
		n--
	}
	return dst[:n]
}

// base64Decode decodes an unpadded bcrypt-alphabet string. It fails on any
// character outside the alphabet and on a decoded size above maxBytes.
func base64Decode(src []byte, maxBytes int) ([]byte, error) {
	padded := make([]byte, 0, len(src)+3)
	padded = append(padded, src...)
	for len(padded)%4 != 0 {
		padded = append(padded, '=')
	}
	dst := make([]byte, bcEncoding.DecodedLen(len(padded)))
	n, err := bcEncoding.Decode(dst, padded)
	if err != nil {
		return nil, fmt.Errorf("invalid bcrypt base64 encoding: %v", err)
	}
	if n > maxBytes {
		return nil, fmt.Errorf("bcrypt base64 value decodes to %d bytes, limit is %d", n, maxBytes)
	}
	return dst[:n], nil
}
