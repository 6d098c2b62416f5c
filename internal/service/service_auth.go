// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-filter-keeper/internal/config"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// authService issues and verifies session tokens. Users themselves are
// managed by the surrounding application; the token's subject is taken as
// the user id.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from cfg. All state is
// read-only after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for userID that expires after the
// configured duration.
func (a *authService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	if userID <= 0 {
		return models.Token{}, fmt.Errorf("%w: user id must be positive", ErrTokenCreationFailed)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the signature, issuer and expiry of tokenString. Any
// failure is reported as ErrTokenIsExpiredOrInvalid so callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
