package memory

import (
	"sync"

	"github.com/patrickmn/go-cache"
)

// Store holds the process-local tables for the serverless deployment variant.
// State lives for the lifetime of the serving process only. The go-cache
// tables are safe for concurrent use on their own; mu additionally serializes
// the read-modify-write append on the per-session message slices.
type Store struct {
	users    *cache.Cache // user id -> entity.User
	sessions *cache.Cache // session id -> entity.ChatSession
	messages *cache.Cache // session id -> []entity.ChatMessage (chronological)
	mu       sync.Mutex
}

func NewStore() *Store {
	return &Store{
		users:    cache.New(cache.NoExpiration, 0),
		sessions: cache.New(cache.NoExpiration, 0),
		messages: cache.New(cache.NoExpiration, 0),
	}
}
