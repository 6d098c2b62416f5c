// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-filter-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptySubject is returned for a token without a "sub" claim.
	ErrEmptySubject = errors.New("empty subject")
)

// GenerateJWTToken issues an HS256 token for userID. The token carries iss,
// sub (the decimal user id), iat and exp = now + tokenDuration.
//
// A negative tokenDuration is accepted and yields an already expired token;
// a zero duration, empty issuer or empty key is rejected.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and returns the token with UserID taken from "sub".
// Only HS256 is accepted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error validating token: %w", err)
	}

	userID, err := subjectAsUserID(token.Claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}

// ParseUserIDFromJWT reads "sub" without verifying the signature. The client
// uses it for display and logging only; the server always verifies.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, fmt.Errorf("error parsing token: %w", err)
	}

	return subjectAsUserID(token.Claims)
}

func subjectAsUserID(claims jwt.Claims) (int64, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error getting subject from token: %w", err)
	}
	if sub == "" {
		return 0, ErrEmptySubject
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user id: %w", err)
	}
	return userID, nil
}
