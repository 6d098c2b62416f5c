// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-filter-keeper/internal/logger"
	"github.com/MKhiriev/go-filter-keeper/internal/service"
	"github.com/MKhiriev/go-filter-keeper/internal/utils"
	"github.com/MKhiriev/go-filter-keeper/models"
)

// maxBodyBytes caps a decoded request body. Criteria themselves are
// limited further by the validator.
const maxBodyBytes = 1 << 20

// getCriteria serves GET /criteria/{viewName}.
func (h *Handler) getCriteria(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, "getCriteria", ErrNoUserInContext)
		return
	}

	rec, err := h.services.CriteriaService.Get(r.Context(), userID, chi.URLParam(r, "viewName"))
	if err != nil {
		h.writeError(w, r, "getCriteria", err)
		return
	}

	h.writeRecord(w, r, rec, http.StatusOK)
}

// createCriteria serves POST /criteria. Records are unique per user and
// view, so posting for a view that already has one overwrites its criteria
// and answers with the existing id.
func (h *Handler) createCriteria(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, "createCriteria", ErrNoUserInContext)
		return
	}

	rec, err := h.decodeRecord(w, r)
	if err != nil {
		h.writeError(w, r, "createCriteria", err)
		return
	}

	created, err := h.services.CriteriaService.Create(r.Context(), userID, rec)
	if err != nil {
		h.writeError(w, r, "createCriteria", err)
		return
	}

	h.writeRecord(w, r, created, http.StatusCreated)
}

// updateCriteria serves PUT /criteria/{id}.
func (h *Handler) updateCriteria(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, "updateCriteria", ErrNoUserInContext)
		return
	}

	id := chi.URLParam(r, "id")
	rec, err := h.decodeRecord(w, r)
	if err != nil {
		h.writeError(w, r, "updateCriteria", err)
		return
	}
	if rec.ID != "" && rec.ID != id {
		h.writeError(w, r, "updateCriteria",
			fmt.Errorf("%w: body id %q differs from path id %q", service.ErrInvalidDataProvided, rec.ID, id))
		return
	}

	updated, err := h.services.CriteriaService.Update(r.Context(), userID, id, rec)
	if err != nil {
		h.writeError(w, r, "updateCriteria", err)
		return
	}

	h.writeRecord(w, r, updated, http.StatusOK)
}

// deleteCriteria serves DELETE /criteria/{id} and answers 204.
func (h *Handler) deleteCriteria(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, "deleteCriteria", ErrNoUserInContext)
		return
	}

	if err := h.services.CriteriaService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "deleteCriteria", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeRecord(w http.ResponseWriter, r *http.Request) (models.CriteriaRecord, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var rec models.CriteriaRecord
	if err := utils.DecodeJSON(r, &rec); err != nil {
		return models.CriteriaRecord{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return rec, nil
}

func (h *Handler) writeRecord(w http.ResponseWriter, r *http.Request, rec models.CriteriaRecord, status int) {
	if _, err := utils.WriteJSON(w, rec, status); err != nil {
		logger.FromRequest(r).Err(err).Str("id", rec.ID).Msg("failed to write criteria response")
	}
}
