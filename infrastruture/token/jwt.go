package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongIssuer   = errors.New("token issued by another service")
	ErrEmptySecret   = errors.New("jwt secret is empty")
	errSigningMethod = errors.New("unexpected signing method")
)

// JwtService signs and verifies HS256 tokens for the protected API routes.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided secret and issuer.
func NewJwtService(secretKey, issuer string) (i.Tokenizer, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}, nil
}

// Generate creates a JWT for the given claims that expires after expTime.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{
		"iss": s.issuer,
		"iat": now.Unix(),
		"exp": now.Add(expTime).Unix(),
	}
	for key, val := range claims {
		jwtClaims[key] = val
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if valid.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}
	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errSigningMethod
	}
	return []byte(s.secretKey), nil
}
