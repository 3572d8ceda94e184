package factory

import (
	"time"

	"github.com/linesgame/linesim/internal/dependencies/mocks"
	"github.com/linesgame/linesim/internal/dependencies/random"
	"github.com/linesgame/linesim/internal/model"
	"github.com/linesgame/linesim/internal/storage/memory"
	"github.com/linesgame/linesim/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls timestamps in tests
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory storage, a
// fixed clock, and a fixed-seed strategy random stream. Session engines
// still use each session's own seed.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, random.New(1), model.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
