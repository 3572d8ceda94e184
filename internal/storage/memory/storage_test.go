package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/linesgame/linesim/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(id string) *model.Session {
	state := model.NewEmptyState(9, 9)
	state.Set(model.Position{Row: 0, Col: 0}, model.Red)
	return &model.Session{
		ID:     model.SessionID(id),
		Seed:   42,
		Config: model.DefaultConfig(),
		State:  state,
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("sess-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal(int64(42), got.Seed)
	s.Equal(model.Red, got.State.Get(model.Position{Row: 0, Col: 0}))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("sess-1")))
	s.Require().NoError(s.storage.DeleteSession(s.ctx, "sess-1"))

	_, err := s.storage.GetSession(s.ctx, "sess-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoop() {
	s.NoError(s.storage.DeleteSession(s.ctx, "missing"))
}

func (s *StorageSuite) TestListSessionIDs() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("b")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("a")))

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"a", "b"}, ids)
}

func (s *StorageSuite) TestSaveOverwrites() {
	session := s.newSession("sess-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	updated := s.newSession("sess-1")
	updated.State.Score = 20
	s.Require().NoError(s.storage.SaveSession(s.ctx, updated))

	got, err := s.storage.GetSession(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(20, got.State.Score)
}
