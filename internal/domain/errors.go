package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyBatch is returned when a batch carries no match snapshots
	ErrEmptyBatch = errors.New("batch contains no matches")

	// ErrBatchTooLarge is returned when a batch exceeds the configured size
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")

	// ErrUnsupportedLocale is returned for an unknown label language
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
