// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session JWT. The server parses incoming bearer tokens into it;
// the token tool prints SignedString for the client to use.
//
// It doubles as the claims type passed to jwt.ParseWithClaims through the
// embedded RegisteredClaims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
