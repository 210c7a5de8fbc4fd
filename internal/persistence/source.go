// Package persistence reads and writes the serialized settings blob.
package persistence

import "context"

// Source provides the persisted settings blob. Read returns the empty string
// when nothing has been persisted yet.
type Source interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, blob string) error
}
