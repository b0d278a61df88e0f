package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	authport "github.com/launchvest/launchvest/internal/domain/port/auth"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

// JWTService implements TokenService with HS256 signed tokens
type JWTService struct {
	secret       []byte
	lifetime     time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTService creates a token service signing with the given secret.
// Tokens expire after lifetime.
func NewJWTService(secret string, lifetime time.Duration, timeProvider coreport.TimeProvider) authport.TokenService {
	return &JWTService{
		secret:       []byte(secret),
		lifetime:     lifetime,
		timeProvider: timeProvider,
	}
}

// Issue signs a token carrying the user identity and role
func (s *JWTService) Issue(userID uint64, role entity.Role) (string, error) {
	now := s.timeProvider.Now()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its claims
func (s *JWTService) Verify(tokenString string) (*authport.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthenticated, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrUnauthenticated
	}

	// Numeric claims come back as float64 after JSON round trip
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}

	roleRaw, ok := claims["role"].(string)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}

	role, err := entity.ParseRole(roleRaw)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	return &authport.TokenClaims{
		UserID: uint64(sub),
		Role:   role,
	}, nil
}
