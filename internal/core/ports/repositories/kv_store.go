package repositories

import "context"

// Fixed keys used in the key-value store.
const (
	KeyCurrentUser = "currentUser"
	KeyUsers       = "users"
)

// SessionKey is the key under which the identity of session sessionID is kept.
func SessionKey(sessionID string) string {
	return KeyCurrentUser + ":" + sessionID
}

// KeyValueStore is a small durable string-keyed blob store. It holds the
// session identities and, for the in-memory backend, the user list.
type KeyValueStore interface {
	// Get returns the value for key. Returns apperrors.ErrNotFound if the key is unset.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put sets key to value, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Missing keys are ignored.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying connection.
	Close() error
}
