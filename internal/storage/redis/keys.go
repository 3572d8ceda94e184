package redis

import (
	"fmt"

	"github.com/linesgame/linesim/internal/model"
)

// Key prefix for all simulation data
const keyPrefix = "linesim"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionIndexKey returns the Redis key for the SET of known session IDs
func sessionIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}
