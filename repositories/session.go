//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/errors"
)

// Logical local storage keys of the credential store.
const (
	KeyAuthToken  = "authToken"
	KeyUserData   = "userData"
	KeySavedEmail = "savedEmail"
)

type ISessionRepository interface {
	SetSession(token string, user domain.User) error
	GetToken() (string, bool, error)
	GetUser() (*domain.User, error)
	ClearSession() (domain.Navigation, error)
	SaveEmail(email string) error
	SavedEmail() (string, bool, error)
	ForgetEmail() error
}

type SessionRepository struct {
	storage contract.LocalStorage
	log     *slog.Logger
}

func NewSessionRepository(storage contract.LocalStorage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{storage: storage, log: log}
}

// SetSession writes the token, then the profile. A failure on the second
// write leaves the token in place; storage failures are not rolled back.
func (r *SessionRepository) SetSession(token string, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	if err = r.storage.SetItem(KeyAuthToken, token); err != nil {
		return err
	}
	return r.storage.SetItem(KeyUserData, string(data))
}

func (r *SessionRepository) GetToken() (string, bool, error) {
	token, ok, err := r.storage.GetItem(KeyAuthToken)
	if err != nil || !ok || token == "" {
		return "", false, err
	}
	return token, true, nil
}

// GetUser returns nil when no profile is stored. A profile that cannot be
// decoded is reported as ErrStorageRead.
func (r *SessionRepository) GetUser() (*domain.User, error) {
	data, ok, err := r.storage.GetItem(KeyUserData)
	if err != nil || !ok {
		return nil, err
	}
	var user domain.User
	if err = json.Unmarshal([]byte(data), &user); err != nil {
		r.log.Warn("Discarding unreadable profile", "key", KeyUserData, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrStorageRead, KeyUserData, err)
	}
	return &user, nil
}

// ClearSession forgets token and profile and sends the user back to login.
func (r *SessionRepository) ClearSession() (domain.Navigation, error) {
	if err := r.storage.RemoveItem(KeyAuthToken); err != nil {
		return domain.Navigation{}, err
	}
	if err := r.storage.RemoveItem(KeyUserData); err != nil {
		return domain.Navigation{}, err
	}
	return domain.NavigateTo(domain.ViewLogin), nil
}

func (r *SessionRepository) SaveEmail(email string) error {
	return r.storage.SetItem(KeySavedEmail, email)
}

func (r *SessionRepository) SavedEmail() (string, bool, error) {
	return r.storage.GetItem(KeySavedEmail)
}

func (r *SessionRepository) ForgetEmail() error {
	return r.storage.RemoveItem(KeySavedEmail)
}
