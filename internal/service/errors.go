// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrViewMismatch        = errors.New("view name does not match the stored record")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
