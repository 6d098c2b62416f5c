// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the criteria server,
// which writes them into error response bodies, and the client, which
// recognises them when it turns a failed call into a status line.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a criteria record.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidViewName is returned when a view name is empty, too long or
	// contains characters outside [A-Za-z0-9_.-].
	MsgInvalidViewName = "invalid view name"

	// MsgEmptyCriteria is returned when a create or update carries no filter
	// fields. Clearing a view is done with DELETE.
	MsgEmptyCriteria = "criteria must not be empty"

	// MsgCriteriaTooLarge is returned when the encoded criteria exceed the
	// server limit.
	MsgCriteriaTooLarge = "criteria payload is too large"

	// MsgViewMismatch is returned when an update names a different view than
	// the stored record.
	MsgViewMismatch = "view name does not match the stored record"

	// MsgCriteriaNotFound is returned when no record exists for the view or
	// id, or it belongs to another user.
	MsgCriteriaNotFound = "criteria not found"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "request hash mismatch"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
