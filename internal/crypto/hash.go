package crypto

import (
	"crypto/hmac"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// TagBytes is the commitment tag length (256 bits).
const TagBytes = 32

// CommitmentTag computes HMAC-SHA3-256 over the decimal ASCII form of
// value, keyed with key. The same (key, value) pair always yields the
// same tag, and forging a tag without the key is infeasible.
func CommitmentTag(key []byte, value int) []byte {
	mac := hmac.New(sha3.New256, key)
	mac.Write([]byte(strconv.Itoa(value)))
	return mac.Sum(nil)
}

// TagEqual compares two tags in constant time.
func TagEqual(a, b []byte) bool { return hmac.Equal(a, b) }
