package storage

import (
	"context"

	"github.com/linesgame/linesim/internal/model"
)

// Storage defines the interface for session persistence
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessionIDs(ctx context.Context) ([]model.SessionID, error)
}
