// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so adapters can embed project defaults while
// still using the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL. Every request times out after
// timeout (zero means no client-side limit) and advertises JSON.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
