package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given
// subject (the operator login).
//
// The token carries the iss, sub, iat and exp claims. All parameters are
// required; an empty issuer, subject or key, or a zero duration, is an error.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-bot-keeper", "admin", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, Login: subject}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and returns the token with Login set from the sub claim.
//
// Expired tokens yield an error wrapping jwt.ErrTokenExpired.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Login:            claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
