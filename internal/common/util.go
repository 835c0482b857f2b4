package common

import "crypto/rand"

// RandBytes returns n cryptographically random bytes. It panics if the
// system entropy source fails, which is not a recoverable condition for
// credential salt generation.
func RandBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Wipe zeroes the buffer in place. Used to clear plaintext secrets once
// they are no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
