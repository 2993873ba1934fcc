package ports

import "context"

// Document keys for the three independently stored JSON documents.
const (
	UsersKey   = "ticketapp.users"
	SessionKey = "ticketapp.session"
	TicketsKey = "ticketapp.tickets"
)

// Store persists named JSON-serializable blobs. Write replaces any prior
// value under the key; Remove is a no-op when the key is absent; Read returns
// domain.ErrNoDocument when the key has never been written. There are no
// transactional guarantees across keys: callers re-read, modify, and rewrite
// whole documents.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Remove(ctx context.Context, key string) error
}
