package middleware

import "restaurant-crm/internal/pkg/errs"

var (
	errMissingToken      = errs.New("bearer token missing")
	errRateLimitExceeded = errs.New("rate limit exceeded")
)
