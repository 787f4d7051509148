// Package hashing provides a driver-based facade over the bcrypt engine,
// for applications that juggle digests from several bcrypt versions at
// once.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface, implemented by
// [BcryptHasher], one instance per configured {version tag, cost} pair.
// The [Manager] is a named driver registry and dispatcher: register a
// hasher per version tag, designate a default, then delegate hashing
// operations through the Manager. [Manager.CheckWithDetect] routes each
// stored digest to the driver matching its "$2*$" prefix.
//
// This matters in practice because bcrypt digests in long-lived systems are
// rarely uniform: PHP mints "$2y$", historical crypt_blowfish builds mint
// "$2x$" (bug-compatible) or "$2a$", and pre-revision systems mint bare
// "$2$". All of them must keep verifying while new digests move to "2b".
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // all five drivers, "2b" default
//	if err != nil { log.Fatal(err) }
//
//	digest, _ := m.Make("my-secret-password")
//	ok, _   := m.CheckWithDetect("my-secret-password", digest) // true
//
// # Migration
//
// Call [Manager.NeedsRehash] on every successful login. It returns true
// when the stored digest carries a non-default version tag or a
// non-default cost. Re-hash and persist immediately:
//
//	ok, _ := m.CheckWithDetect(secret, storedDigest)
//	if ok {
//	    if needs, _ := m.NeedsRehash(storedDigest); needs {
//	        newDigest, _ := m.Make(secret)
//	        persist(userID, newDigest)
//	    }
//	}
package hashing
