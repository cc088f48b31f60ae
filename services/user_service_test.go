package services

import (
	"chatravel/domain"
	"chatravel/domain/event"
	chaterrors "chatravel/errors"
	"chatravel/repositories"
	"chatravel/runtime"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*UserService, *runtime.Bus[event.DiscoverableUser]) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.Default()
	matchBus := runtime.NewBus[event.DiscoverableUser](log, 8, 1)
	return NewUserService(log, repositories.NewUserRepository(db, log), matchBus), matchBus
}

func TestUserService_Register_AnnouncesOnMatchBus(t *testing.T) {
	req := require.New(t)
	service, matchBus := newUserFixture(t)

	// When a user registers; unknown interest values are dropped
	user, err := service.Register("u1", "Alice", []string{"FOOD", "KNITTING"})
	req.NoError(err)
	req.Equal([]domain.Interest{domain.Food}, user.Interests)

	// Then a late subscriber still sees the announcement (replay = 1)
	events, cancel := matchBus.Subscribe()
	defer cancel()
	select {
	case evt := <-events:
		req.Equal("u1", evt.UserID)
		req.Equal("Alice", evt.Name)
	case <-time.After(time.Second):
		req.Fail("registration was not announced")
	}
}

func TestUserService_Register_BlankName(t *testing.T) {
	req := require.New(t)
	service, matchBus := newUserFixture(t)

	_, err := service.Register("u1", "  ", nil)
	req.ErrorIs(err, chaterrors.ErrBlankName)

	// Nothing announced for a rejected registration
	events, cancel := matchBus.Subscribe()
	defer cancel()
	select {
	case <-events:
		req.Fail("rejected registration must not be announced")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUserService_UpdateInterests(t *testing.T) {
	req := require.New(t)
	service, _ := newUserFixture(t)

	_, err := service.Register("u1", "Alice", []string{"FOOD"})
	req.NoError(err)

	// When interests are replaced, the name on record is kept
	user, err := service.UpdateInterests("u1", "ignored", []string{"CULTURE", "TREKKING"})
	req.NoError(err)
	req.Equal("Alice", user.Name)
	req.Equal([]domain.Interest{domain.Culture, domain.Trekking}, user.Interests)

	interests, err := service.GetUserInterests("u1")
	req.NoError(err)
	req.Equal(user.Interests, interests)
}

func TestUserService_UpdateInterests_RegistersUnknownUser(t *testing.T) {
	req := require.New(t)
	service, _ := newUserFixture(t)

	// Updating a user that was never registered falls back to registration
	user, err := service.UpdateInterests("u9", "Newcomer", []string{"SPORTS"})
	req.NoError(err)
	req.Equal("Newcomer", user.Name)

	exists, err := service.UserExists("u9")
	req.NoError(err)
	req.True(exists)
}

func TestUserService_GetUsersByInterest_Unknown(t *testing.T) {
	req := require.New(t)
	service, _ := newUserFixture(t)

	users, err := service.GetUsersByInterest("KNITTING")
	req.NoError(err)
	req.Empty(users)
}
