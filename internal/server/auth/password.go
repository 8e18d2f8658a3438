// Package auth provides credential hashing and the signed-token identity
// scheme used by the HTTP layer.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted, adaptive one-way digest of plain.
// The digest never contains the plaintext and is safe to store.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored digest. Comparison
// is delegated to bcrypt's own verify routine.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
