// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const maxRetries = 3

// retryBase is the first pause; later pauses double.
var retryBase = 50 * time.Millisecond

// withRetry runs fn until it succeeds, returns an error the classifier does
// not consider retryable, runs out of attempts or ctx is done.
func withRetry[T any](ctx context.Context, db *DB, op string, fn func() (T, error)) (T, error) {
	attempt := 0
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))

	return retry.DoValue(ctx, backoff, func(context.Context) (T, error) {
		attempt++
		res, err := fn()
		if err == nil {
			return res, nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		db.logger.Warn().Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Msg("database call failed, may retry")
		return res, retry.RetryableError(err)
	})
}
