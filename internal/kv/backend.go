package kv

import "context"

// Backend is the durable key-value contract the cart and order history
// stores persist through. Values are JSON blobs. A missing key is not an
// error: Get returns (nil, nil).
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
