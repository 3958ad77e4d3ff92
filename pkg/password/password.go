package password

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the fixed bcrypt work factor. Digests embed their own cost, so
// verification keeps working if this ever changes.
const hashCost = 7

// Hash produces a salted bcrypt digest of the plaintext. Two calls with the
// same plaintext yield different digests that both verify.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether digest was produced from plaintext. A mismatch is
// (false, nil); an error is returned only for a malformed digest.
func Verify(plaintext string, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, err
}
