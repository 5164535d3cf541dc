package session

import "context"

// Fixed slot keys, namespaced the same way the mobile app stores them.
const (
	TokenKey = "@OdontoFast:authToken"
	UserKey  = "@OdontoFast:userData"
)

// Keys returns every slot owned by the session.
func Keys() []string {
	return []string{TokenKey, UserKey}
}

type Store interface {
	// Put overwrites a single slot.
	Put(ctx context.Context, key, value string) error
	// PutAll overwrites several slots as one unit.
	PutAll(ctx context.Context, values map[string]string) error
	// Get reports ok=false when the slot was never written or was cleared.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// ClearAll removes the listed slots as one unit.
	ClearAll(ctx context.Context, keys ...string) error
}
