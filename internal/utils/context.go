package utils

import "context"

// Value returns the context value stored under key if it has type T.
func Value[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}
