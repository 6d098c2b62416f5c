// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-filter-keeper/models"
)

func withoutField(c models.Criteria, field string) models.Criteria {
	return c.WithField(field, nil)
}

// sortedFields lists the field names of c in display order.
func sortedFields(c models.Criteria) []string {
	fields := make([]string, 0, len(c))
	for k := range c {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

// formatValue renders a filter value: lists as comma separated items,
// everything else as compact JSON.
func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(value, ",")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// assignmentFor is the input line that reproduces field's current value.
func assignmentFor(c models.Criteria, field string) string {
	return field + "=" + formatValue(c[field])
}

func criteriaJSON(c models.Criteria) (string, error) {
	if c.IsEmpty() {
		return "{}", nil
	}
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode criteria: %w", err)
	}
	return string(raw), nil
}

func renderCriteria(c models.Criteria, cursor int) string {
	if c.IsEmpty() {
		return helpStyle.Render("no filters set")
	}

	var b strings.Builder
	for i, field := range sortedFields(c) {
		line := fmt.Sprintf("%s = %s", field, fitText(formatValue(c[field]), 60))
		if i == cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
