// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the remote store adapter, the local criteria store and the sync
// engine into a single process lifecycle, and drives them either from the
// interactive editor or from one-shot get/set/clear commands.
package client
