package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bank-console/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService reads the claims of backend-issued tokens. Signatures are not
// checked: the console only routes on the role, the backend authorizes.
type TokenService struct {
	parser *jwt.Parser
}

func NewTokenService() TokenServiceInterface {
	return &TokenService{
		parser: jwt.NewParser(),
	}
}

// DecodeClaims parses the token payload without verifying the signature
func (ts *TokenService) DecodeClaims(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, _, err := ts.parser.ParseUnverified(tokenString, &models.SessionClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ResolveRole returns the upper-cased role claim, empty when none is present
func (ts *TokenService) ResolveRole(tokenString string) (string, error) {
	claims, err := ts.DecodeClaims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.ResolvedRole(), nil
}

// LandingRoute is /login for a missing or undecodable token, otherwise the
// route for the token's role.
func (ts *TokenService) LandingRoute(tokenString string) string {
	role, err := ts.ResolveRole(tokenString)
	if err != nil {
		return models.RouteLogin
	}
	return models.LandingRoute(role)
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// GetTokenExpiry returns the exp claim; tokens without one report ErrInvalidToken
func (ts *TokenService) GetTokenExpiry(tokenString string) (time.Time, error) {
	claims, err := ts.DecodeClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}

	return claims.ExpiresAt.Time, nil
}
