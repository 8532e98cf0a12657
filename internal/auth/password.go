package auth

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// ValidatePassword applies the registration policy. Rules run in a fixed
// order and the first failing rule decides the error. Only ASCII letters
// satisfy the case rules, and length counts UTF-16 code units as browser
// clients do.
func ValidatePassword(password string) error {
	if !containsRune(password, isASCIIUpper) {
		return ErrPasswordNoUppercase
	}
	if !containsRune(password, isASCIILower) {
		return ErrPasswordNoLowercase
	}
	if utf16Len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func isASCIIUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

func isASCIILower(r rune) bool { return 'a' <= r && r <= 'z' }

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}

// BcryptHasher hashes passwords with a fixed bcrypt cost
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash returns a salted bcrypt hash of password
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. An empty hash never matches.
func (h *BcryptHasher) Compare(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
