// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNotSynced means the engine gave up on the last write; the error text
// carries the view's last sync error.
var ErrNotSynced = errors.New("criteria not synced")
