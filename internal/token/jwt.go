package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/bloglist-server/internal/model"
)

// ErrSigningKeyMissing is returned when the token manager is built without a secret.
var ErrSigningKeyMissing = errors.New("jwt signing key is not configured")

// Claims represents JWT claims carrying the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWT creates a new JWT token manager. A zero ttl issues tokens without an
// expiry claim.
func NewJWT(secretKey string, ttl time.Duration) (*JWT, error) {
	if secretKey == "" {
		return nil, ErrSigningKeyMissing
	}
	return &JWT{secretKey: []byte(secretKey), ttl: ttl}, nil
}

// GenerateAccessToken creates a signed token binding userID.
func (j *JWT) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID:   userID.String(),
		Username: username,
	}
	if j.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates the token and extracts the user ID.
// Any verification or decoding failure wraps model.ErrInvalidToken; a verified
// token without a usable id claim returns model.ErrMissingIdentity.
func (j *JWT) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, model.ErrInvalidToken
	}

	if claims.UserID == "" {
		return uuid.Nil, model.ErrMissingIdentity
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, model.ErrMissingIdentity
	}

	return userID, nil
}
