package services

import (
	"log/slog"
	"testing"
	"time"

	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/repositories"
	"meet-lab/storage"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestChatService_Send(t *testing.T) {
	req := require.New(t)
	clock := clockwork.NewFakeClockAt(startOfTest)
	svc := NewChatService(repositories.NewChatRepository(storage.NewMemoryStorage(), slog.Default()), clock, slog.Default())
	code := domain.MeetingCode("room-1")

	message, err := svc.Send(code, "  hello there \n")
	req.NoError(err)
	req.Equal("hello there", message.Text)
	req.Equal(domain.SenderSelf, message.Sender)
	req.Equal(domain.DirectionSent, message.Direction)
	req.Equal(startOfTest.UnixMilli(), message.ID)
	req.Equal("2026-03-01T09:30:00.000Z", message.TimestampIso)

	_, err = svc.Send(code, " \t ")
	req.ErrorIs(err, errors.ErrEmptyMessage)

	clock.Advance(time.Second)
	_, err = svc.Send(code, "second")
	req.NoError(err)

	history, err := svc.History(code)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal([]string{"hello there", "second"}, []string{history[0].Text, history[1].Text})

	req.NoError(svc.Clear(code))
	history, err = svc.History(code)
	req.NoError(err)
	req.Empty(history)
}

func TestChatService_MissingCodeUsesDefaultRoom(t *testing.T) {
	req := require.New(t)
	svc := NewChatService(repositories.NewChatRepository(storage.NewMemoryStorage(), slog.Default()), clockwork.NewFakeClockAt(startOfTest), slog.Default())

	_, err := svc.Send("", "hi")
	req.NoError(err)

	history, err := svc.History(domain.DefaultMeetingCode)
	req.NoError(err)
	req.Len(history, 1)
}

func TestChatService_UnreadableHistoryReplaysEmpty(t *testing.T) {
	req := require.New(t)
	local := storage.NewMemoryStorage()
	req.NoError(local.SetItem(repositories.ChatKey("room-1"), "oops"))
	svc := NewChatService(repositories.NewChatRepository(local, slog.Default()), clockwork.NewFakeClockAt(startOfTest), slog.Default())

	history, err := svc.History("room-1")
	req.NoError(err)
	req.Empty(history)
}
