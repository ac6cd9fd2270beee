package application

import "github.com/google/uuid"

// Options derives per-request header overrides. Any value exposing a header
// mapping can serve; nil means no overrides.
type Options interface {
	HeaderParams() map[string]string
}

// PostOptions carries the optional idempotency key attached to create and
// get-or-create requests. The zero value derives no headers.
type PostOptions struct {
	IdempotencyKey string
}

func (o PostOptions) HeaderParams() map[string]string {
	params := map[string]string{}
	if o.IdempotencyKey != "" {
		params["idempotency-key"] = o.IdempotencyKey
	}
	return params
}

// NewIdempotencyKey returns a fresh key for deduplicating retried requests
// on the service side.
func NewIdempotencyKey() string {
	return "auto_" + uuid.NewString()
}
