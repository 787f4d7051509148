package bcrypt_test

import (
	"fmt"
	"log"

	"github.com/bwdmr/vapor/bcrypt"
)

// Example demonstrates the hash/verify round trip.
func Example() {
	digest, err := bcrypt.Hash([]byte("my-secret-password"), bcrypt.MinCost)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := bcrypt.Verify([]byte("my-secret-password"), digest)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)

	ok, err = bcrypt.Verify([]byte("guess"), digest)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ok)
	// Output:
	// true
	// false
}

// ExampleExtractSalt shows salt extraction from a stored digest. The prefix
// length depends on the version tag: 28 characters for lettered tags, 27
// for bare "2".
func ExampleExtractSalt() {
	stored := "$2b$06$DCq7YPn5Rq63x1Lad4cll.TV4S6ytwfsfvkgY8jIucDrjc8deX1s."

	salt, err := bcrypt.ExtractSalt(stored)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(salt)
	fmt.Println(len(salt))
	// Output:
	// $2b$06$DCq7YPn5Rq63x1Lad4cll
	// 28
}

// ExampleCost reads the work factor back out of a digest, e.g. to decide
// whether a stored credential should be re-hashed at a higher cost.
func ExampleCost() {
	stored := "$2b$06$DCq7YPn5Rq63x1Lad4cll.TV4S6ytwfsfvkgY8jIucDrjc8deX1s."

	cost, err := bcrypt.Cost(stored)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cost)
	// Output: 6
}

// ExampleHashWithSalt reproduces a digest deterministically from a known
// salt, the mechanism verification uses internally.
func ExampleHashWithSalt() {
	salt := []byte{
		0x2a, 0x1f, 0x1d, 0xc7, 0x0a, 0x3d, 0x14, 0x79,
		0x56, 0xa4, 0x6f, 0xeb, 0xe3, 0x01, 0x60, 0x17,
	}

	digest, err := bcrypt.HashWithSalt([]byte("hunter2"), bcrypt.Version2B, 6, salt)
	if err != nil {
		log.Fatal(err)
	}

	again, _ := bcrypt.HashWithSalt([]byte("hunter2"), bcrypt.Version2B, 6, salt)
	fmt.Println(digest == again)
	// Output: true
}
