// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredCriteria is a criteria record as persisted by the remote store
// service: one row per (UserID, ViewName).
type StoredCriteria struct {
	ID        string
	UserID    int64
	ViewName  string
	Criteria  Criteria
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record converts the row to its wire representation.
func (s StoredCriteria) Record() CriteriaRecord {
	return CriteriaRecord{ID: s.ID, ViewName: s.ViewName, Criteria: s.Criteria}
}
