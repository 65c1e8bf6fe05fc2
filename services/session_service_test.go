package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"meet-lab/auth"
	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/mocks"
	"meet-lab/repositories"
	"meet-lab/storage"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionService_Gates(t *testing.T) {
	clock := clockwork.NewFakeClockAt(startOfTest)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour, clock)

	t.Run("anonymous user stays on login and is sent there from index", func(t *testing.T) {
		req := require.New(t)
		sessions := repositories.NewSessionRepository(storage.NewMemoryStorage(), slog.Default())
		svc := NewSessionService(sessions, tokens, slog.Default())

		nav, err := svc.CheckAuthStatus(domain.ViewLogin)
		req.NoError(err)
		req.False(nav.Required())

		session, nav, err := svc.RequireAuth()
		req.NoError(err)
		req.Nil(session)
		req.Equal(domain.ViewLogin, nav.To)
	})

	t.Run("logged-in user leaves login and signup", func(t *testing.T) {
		req := require.New(t)
		sessions := repositories.NewSessionRepository(storage.NewMemoryStorage(), slog.Default())
		svc := NewSessionService(sessions, tokens, slog.Default())
		req.NoError(sessions.SetSession("token-1", domain.User{ID: "user_1", Name: "jane"}))

		for _, view := range []domain.View{domain.ViewLogin, domain.ViewSignup} {
			nav, err := svc.CheckAuthStatus(view)
			req.NoError(err)
			req.Equal(domain.ViewIndex, nav.To)
		}
		nav, err := svc.CheckAuthStatus(domain.ViewMeeting)
		req.NoError(err)
		req.False(nav.Required())

		session, nav, err := svc.RequireAuth()
		req.NoError(err)
		req.False(nav.Required())
		req.Equal("token-1", session.Token)
		req.Equal("jane", session.User.Name)
	})

	t.Run("logout clears the session and goes to login", func(t *testing.T) {
		req := require.New(t)
		sessions := repositories.NewSessionRepository(storage.NewMemoryStorage(), slog.Default())
		svc := NewSessionService(sessions, tokens, slog.Default())
		req.NoError(sessions.SetSession("token-1", domain.User{ID: "user_1"}))

		nav, err := svc.Logout()
		req.NoError(err)
		req.Equal(domain.ViewLogin, nav.To)

		user, err := svc.CurrentUser()
		req.NoError(err)
		req.Nil(user)
	})
}

func TestSessionService_Authenticate(t *testing.T) {
	req := require.New(t)
	clock := clockwork.NewFakeClockAt(startOfTest)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour, clock)
	sessions := repositories.NewSessionRepository(storage.NewMemoryStorage(), slog.Default())
	svc := NewSessionService(sessions, tokens, slog.Default())

	token, err := tokens.GenerateToken("user_1")
	req.NoError(err)

	_, err = svc.Authenticate(token)
	req.ErrorIs(err, errors.ErrNotAuthenticated, "valid token but nothing stored")

	req.NoError(sessions.SetSession(token, domain.User{ID: "user_1", Email: "a@b.co"}))
	session, err := svc.Authenticate(token)
	req.NoError(err)
	req.Equal("a@b.co", session.User.Email)

	_, err = svc.Authenticate("not-a-jwt")
	req.ErrorIs(err, errors.ErrNotAuthenticated)

	clock.Advance(2 * time.Hour)
	_, err = svc.Authenticate(token)
	req.ErrorIs(err, errors.ErrNotAuthenticated, "expired token")
}

func TestSessionService_UnreadableProfileIsAbsent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionRepository(ctrl)
	svc := NewSessionService(sessions, auth.NewTokenIssuer("s", time.Hour, clockwork.NewRealClock()), slog.Default())

	sessions.EXPECT().GetUser().Return(nil, fmt.Errorf("%w: userData", errors.ErrStorageRead))
	user, err := svc.CurrentUser()
	req.NoError(err)
	req.Nil(user)

	sessions.EXPECT().SavedEmail().Return("", false, nil)
	email, err := svc.RememberedEmail()
	req.NoError(err)
	req.Empty(email)
}
