package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/errors"
)

// ChatKeyPrefix starts the key of every meeting's chat log.
const ChatKeyPrefix = "chat_"

type IChatRepository interface {
	Append(code domain.MeetingCode, message domain.ChatMessage) error
	Load(code domain.MeetingCode) ([]domain.ChatMessage, error)
	Clear(code domain.MeetingCode) error
}

// ChatRepository keeps one ordered, append-only log per meeting code.
// The whole log is rewritten on every append; there is no size cap.
type ChatRepository struct {
	mu      sync.Mutex
	storage contract.LocalStorage
	log     *slog.Logger
	logs    map[domain.MeetingCode][]domain.ChatMessage
}

func NewChatRepository(storage contract.LocalStorage, log *slog.Logger) *ChatRepository {
	return &ChatRepository{
		storage: storage,
		log:     log,
		logs:    make(map[domain.MeetingCode][]domain.ChatMessage),
	}
}

func ChatKey(code domain.MeetingCode) string {
	return ChatKeyPrefix + code.String()
}

// Append pushes message at the end of the meeting's log and persists the
// whole log. The in-memory log only changes once the write succeeded.
func (r *ChatRepository) Append(code domain.MeetingCode, message domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.logs[code]
	if !ok {
		loaded, err := r.read(code)
		if err != nil && !errors.Is(err, errors.ErrStorageRead) {
			return err
		}
		current = loaded
	}

	next := make([]domain.ChatMessage, len(current), len(current)+1)
	copy(next, current)
	next = append(next, message)

	if err := r.write(code, next); err != nil {
		return err
	}
	r.logs[code] = next
	return nil
}

// Load replays the persisted log, empty when nothing was stored.
func (r *ChatRepository) Load(code domain.MeetingCode) ([]domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.read(code)
	if err != nil {
		return []domain.ChatMessage{}, err
	}
	r.logs[code] = messages

	out := make([]domain.ChatMessage, len(messages))
	copy(out, messages)
	return out, nil
}

func (r *ChatRepository) Clear(code domain.MeetingCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.storage.RemoveItem(ChatKey(code)); err != nil {
		return err
	}
	r.logs[code] = []domain.ChatMessage{}
	return nil
}

func (r *ChatRepository) read(code domain.MeetingCode) ([]domain.ChatMessage, error) {
	data, ok, err := r.storage.GetItem(ChatKey(code))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.ChatMessage{}, nil
	}
	var messages []domain.ChatMessage
	if err = json.Unmarshal([]byte(data), &messages); err != nil {
		r.log.Warn("Unreadable chat log", "meeting_code", code, "error", err)
		return []domain.ChatMessage{}, fmt.Errorf("%w: %s: %v", errors.ErrStorageRead, ChatKey(code), err)
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	return messages, nil
}

func (r *ChatRepository) write(code domain.MeetingCode, messages []domain.ChatMessage) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.storage.SetItem(ChatKey(code), string(data))
}
