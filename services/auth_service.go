package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"meet-lab/auth"
	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/repositories"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type AuthState string

const (
	StateIdle       AuthState = "idle"
	StateSubmitting AuthState = "submitting"
	StateSuccess    AuthState = "success"
	StateFailure    AuthState = "failure"
)

// AuthDelays fakes the latency of a real identity provider.
type AuthDelays struct {
	Login          time.Duration
	Signup         time.Duration
	LoginRedirect  time.Duration
	SignupRedirect time.Duration
}

func DefaultAuthDelays() AuthDelays {
	return AuthDelays{
		Login:          500 * time.Millisecond,
		Signup:         1000 * time.Millisecond,
		LoginRedirect:  1000 * time.Millisecond,
		SignupRedirect: 1500 * time.Millisecond,
	}
}

// Outcome is delivered once a submission settles.
type Outcome struct {
	State      AuthState
	Session    *domain.Session
	Navigation domain.Navigation
	Err        error
}

type IAuthService interface {
	SubmitLogin(form auth.LoginForm) (<-chan Outcome, error)
	SubmitSignup(form auth.SignupForm) (<-chan Outcome, error)
	State() AuthState
	Shutdown()
}

// AuthService is the mock authentication flow. Credentials are never
// checked against anything: a form that passes validation always logs in.
type AuthService struct {
	mu       sync.Mutex
	state    AuthState
	pending  clockwork.Timer
	outcome  chan Outcome
	sessions repositories.ISessionRepository
	tokens   auth.TokenIssuer
	clock    clockwork.Clock
	delays   AuthDelays
	log      *slog.Logger
}

func NewAuthService(
	sessions repositories.ISessionRepository,
	tokens auth.TokenIssuer,
	clock clockwork.Clock,
	delays AuthDelays,
	log *slog.Logger) *AuthService {
	return &AuthService{
		state:    StateIdle,
		sessions: sessions,
		tokens:   tokens,
		clock:    clock,
		delays:   delays,
		log:      log,
	}
}

func (s *AuthService) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SubmitLogin validates the form and, when valid, schedules the simulated
// login. The returned channel receives exactly one Outcome.
func (s *AuthService) SubmitLogin(form auth.LoginForm) (<-chan Outcome, error) {
	form = form.Normalized()
	return s.submit(func() error {
		return auth.ValidateLogin(form)
	}, s.delays.Login, func() Outcome {
		return s.completeLogin(form)
	})
}

func (s *AuthService) SubmitSignup(form auth.SignupForm) (<-chan Outcome, error) {
	form = form.Normalized()
	return s.submit(func() error {
		return auth.ValidateSignup(form)
	}, s.delays.Signup, func() Outcome {
		return s.completeSignup(form)
	})
}

// Shutdown stops a submission that has not settled yet. Its channel is
// closed without an Outcome.
func (s *AuthService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || !s.pending.Stop() {
		return
	}
	s.log.Debug("Pending submission cancelled")
	close(s.outcome)
	s.pending, s.outcome = nil, nil
	s.state = StateIdle
}

func (s *AuthService) submit(validate func() error, delay time.Duration, complete func() Outcome) (<-chan Outcome, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, errors.ErrSubmitInProgress
	}
	if err := validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	outcome := make(chan Outcome, 1)
	s.state = StateSubmitting
	s.outcome = outcome
	s.mu.Unlock()

	// The callback may fire before AfterFunc returns, so it must not rely on
	// s.pending being set.
	timer := s.clock.AfterFunc(delay, func() {
		result := complete()

		s.mu.Lock()
		s.state = result.State
		s.pending, s.outcome = nil, nil
		s.mu.Unlock()

		outcome <- result
		close(outcome)
	})

	s.mu.Lock()
	if s.outcome == outcome {
		s.pending = timer
	}
	s.mu.Unlock()
	return outcome, nil
}

func (s *AuthService) completeLogin(form auth.LoginForm) Outcome {
	if form.Email == "" || form.Password == "" {
		return failure(errors.NewSimulatedFailure("Invalid email or password"))
	}
	user := domain.User{
		ID:         newUserID(),
		Email:      form.Email,
		Name:       strings.SplitN(form.Email, "@", 2)[0],
		JoinedDate: s.clock.Now().UTC().Format(domain.IsoLayout),
	}
	session, err := s.open(user)
	if err != nil {
		return failure(err)
	}

	if form.RememberMe {
		err = s.sessions.SaveEmail(form.Email)
	} else {
		err = s.sessions.ForgetEmail()
	}
	if err != nil {
		s.log.Warn("Could not update remembered email", "error", err)
	}

	s.log.Info("User logged in", "user_id", user.ID)
	return Outcome{
		State:      StateSuccess,
		Session:    session,
		Navigation: domain.Navigation{To: domain.ViewIndex, After: s.delays.LoginRedirect},
	}
}

func (s *AuthService) completeSignup(form auth.SignupForm) Outcome {
	if form.Email == "" || form.Password == "" {
		return failure(errors.NewSimulatedFailure("An error occurred. Please try again."))
	}
	user := domain.User{
		ID:         newUserID(),
		Email:      form.Email,
		Name:       form.FirstName + " " + form.LastName,
		JoinedDate: s.clock.Now().UTC().Format(domain.IsoLayout),
	}
	session, err := s.open(user)
	if err != nil {
		return failure(err)
	}

	s.log.Info("Account created", "user_id", user.ID)
	return Outcome{
		State:      StateSuccess,
		Session:    session,
		Navigation: domain.Navigation{To: domain.ViewIndex, After: s.delays.SignupRedirect},
	}
}

func (s *AuthService) open(user domain.User) (*domain.Session, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	if err = s.sessions.SetSession(token, user); err != nil {
		s.log.Error("Could not persist session", "user_id", user.ID, "error", err)
		return nil, err
	}
	return &domain.Session{Token: token, User: user}, nil
}

func failure(err error) Outcome {
	return Outcome{State: StateFailure, Err: err}
}

// newUserID returns "user_" followed by nine random characters.
func newUserID() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
