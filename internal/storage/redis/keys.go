package redis

import (
	"fmt"

	"github.com/shoockrates/casinosim/internal/state"
)

// Key prefix for all interpreter data
const keyPrefix = "casinosim"

// sessionKey returns the Redis key for a session snapshot
func sessionKey(id state.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of known session ids
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
