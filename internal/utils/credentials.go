package utils

import (
	"fmt"
	"sync"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a login password for storage in User.PasswordHash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// decoyHash stands in for the stored hash of a user that does not exist.
var decoyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("no such user"), bcrypt.DefaultCost)
	if err != nil {
		return nil
	}
	return hash
})

// PasswordMatches reports whether password is the login password of user.
// A nil user is checked against a decoy hash, so a lookup miss costs the
// same bcrypt work as a wrong password; it always reports false.
func PasswordMatches(user *domain.User, password string) bool {
	if user == nil {
		bcrypt.CompareHashAndPassword(decoyHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
