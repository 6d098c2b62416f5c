// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

var (
	ErrNotAssignment    = errors.New(`expected "field=value1,value2"`)
	ErrEmptyFieldName   = errors.New("field name is empty")
	ErrInvalidFieldName = errors.New("field name must not contain spaces")
)

// ParseAssignment reads a line of the form "field=v1,v2" as typed in the
// editor or passed on the command line. Values are trimmed and empty ones
// dropped, so "field=" yields no values.
func ParseAssignment(line string) (field string, values []string, err error) {
	name, rawValues, ok := strings.Cut(line, "=")
	if !ok {
		return "", nil, ErrNotAssignment
	}

	field = strings.TrimSpace(name)
	if field == "" {
		return "", nil, ErrEmptyFieldName
	}
	if strings.ContainsAny(field, " \t") {
		return "", nil, ErrInvalidFieldName
	}

	for _, v := range strings.Split(rawValues, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return field, values, nil
}

// WithField returns a copy of c with field set to the list values, or
// without field when values is empty. c is not modified.
func (c Criteria) WithField(field string, values []string) Criteria {
	out := c.Clone()
	if len(values) == 0 {
		delete(out, field)
		if out.IsEmpty() {
			return nil
		}
		return out
	}

	if out == nil {
		out = Criteria{}
	}
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	out[field] = list
	return out
}

// ApplyAssignments parses every line and applies them to c in order.
func (c Criteria) ApplyAssignments(lines ...string) (Criteria, error) {
	out := c.Clone()
	for _, line := range lines {
		field, values, err := ParseAssignment(line)
		if err != nil {
			return nil, err
		}
		out = out.WithField(field, values)
	}
	return out, nil
}
