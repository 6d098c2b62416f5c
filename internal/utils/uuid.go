// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator issues record ids. Ids are UUIDv7 so they sort by creation
// time; if the v7 source fails a random v4 is returned instead.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID. Used to reject path ids early.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
