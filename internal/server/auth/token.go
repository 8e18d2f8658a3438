package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

// Claims is the identity payload embedded in a token: a projection of the
// user record at issuance time. Role or name changes do not affect
// already-issued tokens until reissue.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64       `json:"uid"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Signer issues and verifies HS256 tokens. It is constructed explicitly with
// the server secret and session lifetime and injected where needed; there is
// no package-level instance.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

func NewSigner(secret []byte, ttl time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Issue produces a signed token embedding the claims and an absolute expiry.
func (s *Signer) Issue(userID int64, username string, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded claims. It fails with common.ErrTokenExpired when the token is
// past its expiry and common.ErrInvalidToken for any other defect. The check
// is self-contained; the session registry is consulted separately.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
