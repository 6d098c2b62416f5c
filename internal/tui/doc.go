// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal criteria editor of the client: a list of the
// configured views and, for the selected one, its filter fields with the
// sync status of the view underneath.
package tui
