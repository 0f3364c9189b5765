package session

import (
	"context"
	"errors"
	"time"
)

var ErrMiss = errors.New("session: key not found")

// Store is a TTL key/value store holding JSON encoded values.
type Store interface {
	// Get decodes the value of key into dest, or returns ErrMiss.
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
