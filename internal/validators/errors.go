// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrInvalidViewName   = errors.New("invalid view name")
	ErrEmptyCriteria     = errors.New("criteria cannot be empty")
	ErrCriteriaTooLarge  = errors.New("criteria payload too large")
	ErrCriteriaNotObject = errors.New("criteria must be a JSON object")
)
