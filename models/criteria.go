// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Criteria is the opaque filter selection of a single view: a mapping from
// field name to filter value(s). Values may be scalars, lists or nested
// objects. The sync engine never interprets them; it only moves, compares,
// serialises and tests them for emptiness.
type Criteria map[string]any

// IsEmpty reports whether c carries no filter fields. A nil map is empty.
func (c Criteria) IsEmpty() bool {
	return len(c) == 0
}

// Equal reports whether c and other encode to the same canonical JSON.
//
// Comparing encodings instead of Go values makes a payload decoded from the
// wire (numbers as float64, lists as []any) equal to the same payload built
// locally with typed values. Two empty payloads are always equal. Payloads
// that JSON cannot encode (NaN, channels) are compared by their printed
// form, so such a payload still equals itself.
func (c Criteria) Equal(other Criteria) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return c.IsEmpty() && other.IsEmpty()
	}

	a, errA := json.Marshal(c)
	b, errB := json.Marshal(other)
	switch {
	case errA != nil && errB != nil:
		return fmt.Sprint(c) == fmt.Sprint(other)
	case errA != nil || errB != nil:
		return false
	}

	return bytes.Equal(a, b)
}

// Clone returns a deep copy of c made through a JSON round trip, so the copy
// shares no nested maps or slices with the original. Clone of an empty
// payload is nil.
func (c Criteria) Clone() Criteria {
	if c.IsEmpty() {
		return nil
	}

	raw, err := json.Marshal(c)
	if err != nil {
		// not JSON-representable; fall back to a shallow copy
		out := make(Criteria, len(c))
		for k, v := range c {
			out[k] = v
		}
		return out
	}

	var out Criteria
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Value implements driver.Valuer. Criteria are stored as a JSON text column;
// an empty payload is stored as "{}".
func (c Criteria) Value() (driver.Value, error) {
	if c.IsEmpty() {
		return "{}", nil
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode criteria column: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the JSON text column written by Value.
func (c *Criteria) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("scan criteria column: unsupported type %T", src)
	}

	var out Criteria
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("scan criteria column: %w", err)
	}
	if out.IsEmpty() {
		out = nil
	}
	*c = out
	return nil
}

// CriteriaRecord is the remote representation of one view's criteria.
// ID is empty until the remote service assigns one on creation.
type CriteriaRecord struct {
	// ID is the server-generated identifier (UUIDv7 string).
	ID string `json:"id,omitempty"`

	// ViewName is the logical view this record belongs to.
	ViewName string `json:"viewName"`

	// Criteria is the filter payload.
	Criteria Criteria `json:"criteria"`
}

// EncodeCriteria converts a call-site typed criteria shape into the opaque
// payload handled by the sync engine. Fields are named by their JSON tags and
// zero values tagged with omitempty are dropped, so an all-zero struct
// encodes to an empty payload.
func EncodeCriteria[T any](v T) (Criteria, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode criteria: %w", err)
	}

	var c Criteria
	if err = json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("encode criteria: payload is not an object: %w", err)
	}
	if c.IsEmpty() {
		return nil, nil
	}
	return c, nil
}

// DecodeCriteria converts an opaque payload back into the typed shape used by
// a particular view.
func DecodeCriteria[T any](c Criteria) (T, error) {
	var v T
	if c.IsEmpty() {
		return v, nil
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return v, fmt.Errorf("decode criteria: %w", err)
	}
	if err = json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode criteria: %w", err)
	}
	return v, nil
}
