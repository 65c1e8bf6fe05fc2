package services

import (
	"log/slog"
	"strings"

	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/repositories"

	"github.com/jonboulle/clockwork"
)

type IChatService interface {
	Send(code domain.MeetingCode, text string) (domain.ChatMessage, error)
	History(code domain.MeetingCode) ([]domain.ChatMessage, error)
	Clear(code domain.MeetingCode) error
}

type ChatService struct {
	chats repositories.IChatRepository
	clock clockwork.Clock
	log   *slog.Logger
}

func NewChatService(chats repositories.IChatRepository, clock clockwork.Clock, log *slog.Logger) *ChatService {
	return &ChatService{chats: chats, clock: clock, log: log}
}

// Send appends a locally typed message. Surrounding blanks are dropped and
// blank messages are refused with ErrEmptyMessage.
func (s *ChatService) Send(code domain.MeetingCode, text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, errors.ErrEmptyMessage
	}
	code = orDefault(code)
	message := domain.NewSentMessage(text, s.clock.Now())
	if err := s.chats.Append(code, message); err != nil {
		return domain.ChatMessage{}, err
	}
	s.log.Debug("Message sent", "meeting_code", code, "id", message.ID)
	return message, nil
}

// History replays the log on room entry. An unreadable log replays as empty.
func (s *ChatService) History(code domain.MeetingCode) ([]domain.ChatMessage, error) {
	messages, err := s.chats.Load(orDefault(code))
	if errors.Is(err, errors.ErrStorageRead) {
		return []domain.ChatMessage{}, nil
	}
	return messages, err
}

func (s *ChatService) Clear(code domain.MeetingCode) error {
	return s.chats.Clear(orDefault(code))
}

func orDefault(code domain.MeetingCode) domain.MeetingCode {
	if code.IsZero() {
		return domain.DefaultMeetingCode
	}
	return domain.MeetingCode(strings.TrimSpace(code.String()))
}
