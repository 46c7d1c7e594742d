package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const Issuer = "mindmirror"

var ErrInvalidToken = errors.New("invalid token")

// JWTMaker signs and verifies HS256 access tokens.
type JWTMaker struct {
	secret []byte
	now    func() time.Time
}

func NewJWTMaker(secret string, now func() time.Time) *JWTMaker {
	if now == nil {
		now = time.Now
	}
	return &JWTMaker{secret: []byte(secret), now: now}
}

func (m *JWTMaker) GenerateToken(claims *UserClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Issue builds claims for the user valid for ttl and signs them.
func (m *JWTMaker) Issue(userID uuid.UUID, email string, ttl time.Duration) (string, *UserClaims, error) {
	claims, err := NewUserClaims(userID, email, m.now(), ttl)
	if err != nil {
		return "", nil, err
	}
	signed, err := m.GenerateToken(claims)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (m *JWTMaker) VerifyToken(tokenStr string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
