// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the go-filter-keeper binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags (flag package for the server, a cobra-filled
//     overlay for the client and the token tool)
//  3. JSON or YAML config file
//
// The entry points are [GetServerConfig], [GetClientConfig] and
// [GetAuthConfig]. Each returns a narrowed view validated for its binary.
package config
