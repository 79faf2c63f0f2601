package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidResetToken is returned for reset tokens that are malformed,
// expired, signed with another key or issued by someone else.
var ErrInvalidResetToken = errors.New("invalid reset token")

const resetPurpose = "password_reset"

// ResetTokenManager issues and verifies short-lived password reset links.
type ResetTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewResetTokenManager creates a reset token manager.
// secret must be at least 32 characters for HS256 security.
func NewResetTokenManager(secret, issuer string, ttl time.Duration) *ResetTokenManager {
	return &ResetTokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type resetClaims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// Issue creates a signed HS256 token with the account ID as subject.
func (m *ResetTokenManager) Issue(accountID uuid.UUID) (string, error) {
	now := m.now()
	claims := resetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Purpose: resetPurpose,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return signed, nil
}

// Verify parses a reset token and returns the account it was issued for.
// Every failure wraps ErrInvalidResetToken.
func (m *ResetTokenManager) Verify(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidResetToken)
	}

	parsed, err := jwt.ParseWithClaims(token, &resetClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidResetToken, err)
	}

	claims, ok := parsed.Claims.(*resetClaims)
	if !ok || !parsed.Valid || claims.Purpose != resetPurpose {
		return uuid.Nil, fmt.Errorf("%w: bad claims", ErrInvalidResetToken)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject: %v", ErrInvalidResetToken, err)
	}
	return id, nil
}
