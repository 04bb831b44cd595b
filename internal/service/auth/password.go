package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for producing password digests.
type PasswordHasher interface {
	// Hash produces a one-way, salted digest of the given password.
	// The same input yields a different digest on every call.
	Hash(password string) (string, error)
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on any mismatch.
	// A malformed digest reports failure; it never panics.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordHasher and PasswordVerifier using bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a BcryptVerifier with the given work factor.
// Costs outside bcrypt's valid range fall back to the library default.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

var (
	_ PasswordHasher   = (*BcryptVerifier)(nil)
	_ PasswordVerifier = (*BcryptVerifier)(nil)
)

// Hash implements the PasswordHasher interface using bcrypt. bcrypt
// embeds a random salt in every digest.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
