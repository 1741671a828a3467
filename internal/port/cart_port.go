package port

import "context"

// CartStorage persists the serialized cart as a single blob under a key.
type CartStorage interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, blob []byte) error
}
