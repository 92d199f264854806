package storage

import (
	"context"
	"time"
)

type ctxKey string

// IsNotLoggableContentCtxKey hides stored values from debug logs, e.g. for password hashes.
const IsNotLoggableContentCtxKey ctxKey = "is_not_loggable"

type Client interface {
	Read(ctx context.Context, key string) (raw []byte, found bool, err error)
	Write(ctx context.Context, key string, raw []byte, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	Load(ctx context.Context, key string, target interface{}) (found bool, err error)
	Save(ctx context.Context, key string, data interface{}, validity time.Duration) error
	Close() error
}

func isLoggable(ctx context.Context) bool {
	return ctx.Value(IsNotLoggableContentCtxKey) == nil
}
