package services

import (
	"log/slog"
	"strings"
	"sync"

	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/repositories"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const untitledMeeting = "Meeting"

type IMeetingService interface {
	Start(title string) (domain.Attendance, error)
	Join(name string, code domain.MeetingCode) (domain.Attendance, error)
	End(code domain.MeetingCode) error
	ShareLink(code domain.MeetingCode) string
	Controls(code domain.MeetingCode) domain.ControlPanelState
	ApplyControl(code domain.MeetingCode, action domain.Action) (domain.Transition, error)
	ApplyShortcut(code domain.MeetingCode, press domain.KeyPress) (ShortcutResult, bool)
}

// ShortcutResult carries either the control transition or the share link,
// depending on the action the key press was bound to.
type ShortcutResult struct {
	Action     domain.Action      `json:"action"`
	Transition *domain.Transition `json:"transition,omitempty"`
	Link       string             `json:"link,omitempty"`
}

// MeetingService registers meetings and keeps the control panel of each
// room this device is in.
type MeetingService struct {
	mu       sync.Mutex
	controls map[domain.MeetingCode]domain.ControlPanelState
	meetings repositories.IMeetingRepository
	sessions ISessionService
	chat     IChatService
	clock    clockwork.Clock
	origin   string
	log      *slog.Logger
}

func NewMeetingService(
	meetings repositories.IMeetingRepository,
	sessions ISessionService,
	chat IChatService,
	clock clockwork.Clock,
	origin string,
	log *slog.Logger) *MeetingService {
	return &MeetingService{
		controls: make(map[domain.MeetingCode]domain.ControlPanelState),
		meetings: meetings,
		sessions: sessions,
		chat:     chat,
		clock:    clock,
		origin:   origin,
		log:      log,
	}
}

// Start opens a new meeting hosted by the logged-in user.
func (s *MeetingService) Start(title string) (domain.Attendance, error) {
	user, err := s.currentUser()
	if err != nil {
		return domain.Attendance{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = untitledMeeting
	}
	now := s.clock.Now().UTC()
	meeting := domain.Meeting{
		ID:         uuid.New(),
		Code:       domain.GenerateMeetingCode(user.ID, now),
		Title:      title,
		HostUserID: user.ID,
		Active:     true,
		CreatedAt:  now,
	}
	if err = s.meetings.Save(meeting); err != nil {
		return domain.Attendance{}, err
	}
	s.log.Info("Meeting started", "meeting_code", meeting.Code, "host", user.ID)
	return domain.Attendance{Meeting: meeting, DisplayName: title, Host: true}, nil
}

// Join enters an existing, still active meeting under the given name.
func (s *MeetingService) Join(name string, code domain.MeetingCode) (domain.Attendance, error) {
	if _, err := s.currentUser(); err != nil {
		return domain.Attendance{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Attendance{}, errors.NewValidationError("name", "Please enter your name")
	}
	if code.IsZero() {
		return domain.Attendance{}, errors.NewValidationError("meetingCode", "Please enter a meeting code")
	}
	code = domain.MeetingCode(strings.TrimSpace(code.String()))

	meeting, err := s.meetings.FindByCode(code)
	if err != nil {
		return domain.Attendance{}, err
	}
	if !meeting.Active {
		return domain.Attendance{}, errors.ErrMeetingEnded
	}
	s.log.Info("Meeting joined", "meeting_code", code)
	return domain.Attendance{Meeting: meeting, DisplayName: name}, nil
}

// End marks the meeting inactive and drops its local chat log and controls.
func (s *MeetingService) End(code domain.MeetingCode) error {
	meeting, err := s.meetings.FindByCode(code)
	if err != nil {
		return err
	}
	if meeting.Active {
		meeting.Active = false
		if err = s.meetings.Save(meeting); err != nil {
			return err
		}
	}
	if err = s.chat.Clear(code); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.controls, code)
	s.mu.Unlock()
	s.log.Info("Meeting ended", "meeting_code", code)
	return nil
}

func (s *MeetingService) ShareLink(code domain.MeetingCode) string {
	return domain.ShareLink(s.origin, code)
}

func (s *MeetingService) Controls(code domain.MeetingCode) domain.ControlPanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls[code]
}

func (s *MeetingService) ApplyControl(code domain.MeetingCode, action domain.Action) (domain.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	transition, err := domain.Apply(s.controls[code], action)
	if err != nil {
		return domain.Transition{}, err
	}
	s.controls[code] = transition.State
	return transition, nil
}

// ApplyShortcut reports false for unbound keys and for key presses made
// while typing.
func (s *MeetingService) ApplyShortcut(code domain.MeetingCode, press domain.KeyPress) (ShortcutResult, bool) {
	action, ok := domain.Shortcut(press)
	if !ok {
		return ShortcutResult{}, false
	}
	if action == domain.ActionShareLink {
		return ShortcutResult{Action: action, Link: s.ShareLink(code)}, true
	}
	transition, err := s.ApplyControl(code, action)
	if err != nil {
		return ShortcutResult{}, false
	}
	return ShortcutResult{Action: action, Transition: &transition}, true
}

func (s *MeetingService) currentUser() (*domain.User, error) {
	user, err := s.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrNotAuthenticated
	}
	return user, nil
}
