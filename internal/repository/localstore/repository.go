// Package localstore is the durable key/value store behind cart snapshots.
// Each namespace (a session ID) behaves like its own browser storage.
package localstore

import "context"

type Repository interface {
	// Get returns domain.ErrNotFound when the key is absent.
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
}
