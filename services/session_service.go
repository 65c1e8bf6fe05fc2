package services

import (
	"log/slog"

	"meet-lab/auth"
	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/repositories"
)

type ISessionService interface {
	CheckAuthStatus(view domain.View) (domain.Navigation, error)
	RequireAuth() (*domain.Session, domain.Navigation, error)
	Authenticate(token string) (*domain.Session, error)
	CurrentUser() (*domain.User, error)
	RememberedEmail() (string, error)
	Logout() (domain.Navigation, error)
}

// SessionService implements the page gates on top of the credential store.
type SessionService struct {
	sessions repositories.ISessionRepository
	tokens   auth.TokenIssuer
	log      *slog.Logger
}

func NewSessionService(sessions repositories.ISessionRepository, tokens auth.TokenIssuer, log *slog.Logger) *SessionService {
	return &SessionService{sessions: sessions, tokens: tokens, log: log}
}

// CheckAuthStatus sends an already logged-in user away from the login and
// signup pages. Other pages stay.
func (s *SessionService) CheckAuthStatus(view domain.View) (domain.Navigation, error) {
	if view != domain.ViewLogin && view != domain.ViewSignup {
		return domain.Navigation{}, nil
	}
	_, ok, err := s.sessions.GetToken()
	if err != nil || !ok {
		return domain.Navigation{}, err
	}
	return domain.NavigateTo(domain.ViewIndex), nil
}

// RequireAuth guards the pages behind login. Without a token the caller is
// sent to the login page and the returned session is nil.
func (s *SessionService) RequireAuth() (*domain.Session, domain.Navigation, error) {
	token, ok, err := s.sessions.GetToken()
	if err != nil {
		return nil, domain.Navigation{}, err
	}
	if !ok {
		return nil, domain.NavigateTo(domain.ViewLogin), nil
	}
	session := &domain.Session{Token: token}
	user, err := s.CurrentUser()
	if err != nil {
		return nil, domain.Navigation{}, err
	}
	if user != nil {
		session.User = *user
	}
	return session, domain.Navigation{}, nil
}

// Authenticate accepts a bearer token only if it is valid and is the one
// currently stored.
func (s *SessionService) Authenticate(token string) (*domain.Session, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		s.log.Debug("Rejected token", "error", err)
		return nil, errors.ErrNotAuthenticated
	}
	session, nav, err := s.RequireAuth()
	if err != nil {
		return nil, err
	}
	if nav.Required() || session.Token != token {
		return nil, errors.ErrNotAuthenticated
	}
	if session.User.ID == "" {
		session.User.ID = claims.UserID
	}
	return session, nil
}

// CurrentUser returns nil when no readable profile is stored.
func (s *SessionService) CurrentUser() (*domain.User, error) {
	user, err := s.sessions.GetUser()
	if errors.Is(err, errors.ErrStorageRead) {
		return nil, nil
	}
	return user, err
}

// RememberedEmail pre-fills the login form, empty when nothing was saved.
func (s *SessionService) RememberedEmail() (string, error) {
	email, _, err := s.sessions.SavedEmail()
	return email, err
}

func (s *SessionService) Logout() (domain.Navigation, error) {
	nav, err := s.sessions.ClearSession()
	if err != nil {
		return domain.Navigation{}, err
	}
	s.log.Info("User logged out")
	return nav, nil
}
