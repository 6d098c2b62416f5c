// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-filter-keeper/internal/app"
	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/store"
	"github.com/MKhiriev/go-filter-keeper/internal/validators"
)

// errorResponse is the status and plain-text body written for an error.
type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first target matched with
// errors.Is wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{validators.ErrInvalidViewName, errorResponse{http.StatusBadRequest, app.MsgInvalidViewName}},
	{validators.ErrEmptyCriteria, errorResponse{http.StatusBadRequest, app.MsgEmptyCriteria}},
	{validators.ErrCriteriaTooLarge, errorResponse{http.StatusBadRequest, app.MsgCriteriaTooLarge}},
	{validators.ErrCriteriaNotObject, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrViewMismatch, errorResponse{http.StatusBadRequest, app.MsgViewMismatch}},
	{ErrMissingHash, errorResponse{http.StatusBadRequest, app.MsgHashMismatch}},
	{ErrHashMismatch, errorResponse{http.StatusBadRequest, app.MsgHashMismatch}},

	{validators.ErrInvalidUserID, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrNoUserInContext, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrCriteriaNotFound, errorResponse{http.StatusNotFound, app.MsgCriteriaNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err with the request-scoped logger and answers with the
// mapped status and message. Server-side failures are logged at error
// level, client mistakes at debug.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Debug()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("op", op).Int("status", resp.status).Msg("request failed")

	http.Error(w, resp.message, resp.status)
}
