// Password hashing utilities.
//
// WHY BCRYPT?
// bcrypt is deliberately slow — that slowness makes brute-force attacks
// expensive. It also generates a random salt per hash and embeds salt and
// cost in the output string, so verification needs no side-channel:
//
//	$2a$10$<22-char salt><31-char hash>
//	 ^   ^
//	 |   cost (10 rounds → 2^10 iterations)
//	 version
//
// Two users with the same password therefore get different hashes, and the
// stored string alone is enough to verify a login attempt.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor. This service has always hashed at
// cost 10; raising it silently would make existing hashes verify under a
// different work factor than new ones, which is fine for bcrypt but worth
// doing deliberately rather than as a side effect.
const defaultCost = 10

// PasswordService provides bcrypt hashing and verification.
//
// It's a struct (not free functions) so the cost can be injected in tests —
// cost 4 (the bcrypt minimum) makes tests run in milliseconds without
// changing the logic under test.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the production cost (10).
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceForTest creates a PasswordService with a custom cost.
// Use bcrypt.MinCost (4) in tests; do NOT use a low cost in production.
func NewPasswordServiceForTest(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash hashes the given plaintext password.
//
// The output is self-contained — store it directly; Verify knows how to
// decode the embedded salt and cost.
//
// Returns an error if the plaintext exceeds 72 bytes: bcrypt silently
// truncates longer input, so we reject it explicitly instead.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether a plaintext password matches a stored bcrypt hash.
//
// It never returns an error for a merely wrong password or a malformed
// hash — any failure to match is just "false". bcrypt compares in constant
// time internally, so response timing leaks nothing about how close a guess
// was.
func (p *PasswordService) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
