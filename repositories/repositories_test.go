package repositories

import (
	"log/slog"
	"testing"
	"time"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/mocks"
	"meet-lab/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func badgerStorage(t *testing.T) contract.LocalStorage {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewBadgerStorage(db, slog.Default())
}

func TestSessionRepository_SetGetClear(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := NewSessionRepository(badgerStorage(t), log)
	user := domain.User{ID: "user_k3j9x0a1b", Email: "jane@example.com", Name: "jane", JoinedDate: "2026-03-01T09:30:15.250Z"}

	req.NoError(repository.SetSession("token-1", user))

	token, ok, err := repository.GetToken()
	req.NoError(err)
	req.True(ok)
	req.Equal("token-1", token)

	fetched, err := repository.GetUser()
	req.NoError(err)
	req.NotNil(fetched)
	req.Equal(user, *fetched)

	nav, err := repository.ClearSession()
	req.NoError(err)
	req.Equal(domain.ViewLogin, nav.To)

	_, ok, err = repository.GetToken()
	req.NoError(err)
	req.False(ok)
	fetched, err = repository.GetUser()
	req.NoError(err)
	req.Nil(fetched)
}

func TestSessionRepository_MalformedProfile(t *testing.T) {
	req := require.New(t)
	local := storage.NewMemoryStorage()
	repository := NewSessionRepository(local, slog.Default())
	req.NoError(local.SetItem(KeyUserData, "{not json"))

	user, err := repository.GetUser()
	req.ErrorIs(err, errors.ErrStorageRead)
	req.Nil(user)
}

func TestSessionRepository_RememberedEmail(t *testing.T) {
	req := require.New(t)
	repository := NewSessionRepository(storage.NewMemoryStorage(), slog.Default())

	_, ok, err := repository.SavedEmail()
	req.NoError(err)
	req.False(ok)

	req.NoError(repository.SaveEmail("jane@example.com"))
	email, ok, err := repository.SavedEmail()
	req.NoError(err)
	req.True(ok)
	req.Equal("jane@example.com", email)

	req.NoError(repository.ForgetEmail())
	_, ok, err = repository.SavedEmail()
	req.NoError(err)
	req.False(ok)
}

func TestSessionRepository_ProfileWriteFailureKeepsToken(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	local := mocks.NewMockLocalStorage(ctrl)
	repository := NewSessionRepository(local, slog.Default())

	gomock.InOrder(
		local.EXPECT().SetItem(KeyAuthToken, "token-1").Return(nil),
		local.EXPECT().SetItem(KeyUserData, gomock.Any()).Return(badger.ErrDBClosed),
	)
	local.EXPECT().RemoveItem(gomock.Any()).Times(0)

	err := repository.SetSession("token-1", domain.User{ID: "user_1"})
	req.ErrorIs(err, badger.ErrDBClosed)
}

func TestChatRepository_AppendReloadKeepsOrder(t *testing.T) {
	req := require.New(t)
	local := badgerStorage(t)
	code := domain.MeetingCode("abc-defg-hij")
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	repository := NewChatRepository(local, slog.Default())
	var sent []domain.ChatMessage
	for i, text := range []string{"hello", "hello", "is my audio ok?", "bye"} {
		message := domain.NewSentMessage(text, at.Add(time.Duration(i)*time.Second))
		sent = append(sent, message)
		req.NoError(repository.Append(code, message))
	}

	// A fresh repository replays what the first one persisted.
	reloaded, err := NewChatRepository(local, slog.Default()).Load(code)
	req.NoError(err)
	req.Equal(sent, reloaded)
}

func TestChatRepository_AppendAfterRestartKeepsHistory(t *testing.T) {
	req := require.New(t)
	local := storage.NewMemoryStorage()
	code := domain.MeetingCode("room-1")
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	first := domain.NewSentMessage("first", at)
	req.NoError(NewChatRepository(local, slog.Default()).Append(code, first))

	second := domain.NewSentMessage("second", at.Add(time.Second))
	repository := NewChatRepository(local, slog.Default())
	req.NoError(repository.Append(code, second))

	messages, err := repository.Load(code)
	req.NoError(err)
	req.Equal([]domain.ChatMessage{first, second}, messages)
}

func TestChatRepository_ScopedByCode(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(storage.NewMemoryStorage(), slog.Default())
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	req.NoError(repository.Append("room-a", domain.NewSentMessage("for a", at)))

	messages, err := repository.Load("room-b")
	req.NoError(err)
	req.Empty(messages)
}

func TestChatRepository_ClearThenLoadIsEmpty(t *testing.T) {
	req := require.New(t)
	local := storage.NewMemoryStorage()
	repository := NewChatRepository(local, slog.Default())
	code := domain.MeetingCode("room-1")

	req.NoError(repository.Append(code, domain.NewSentMessage("hi", time.Now())))
	req.NoError(repository.Clear(code))

	messages, err := repository.Load(code)
	req.NoError(err)
	req.Empty(messages)

	_, ok, err := local.GetItem(ChatKey(code))
	req.NoError(err)
	req.False(ok)
}

func TestChatRepository_MalformedLog(t *testing.T) {
	req := require.New(t)
	local := storage.NewMemoryStorage()
	code := domain.MeetingCode("room-1")
	req.NoError(local.SetItem(ChatKey(code), "[{"))
	repository := NewChatRepository(local, slog.Default())

	messages, err := repository.Load(code)
	req.ErrorIs(err, errors.ErrStorageRead)
	req.Empty(messages)

	// The next append starts a fresh log over the unreadable one.
	message := domain.NewSentMessage("hi", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
	req.NoError(repository.Append(code, message))
	messages, err = repository.Load(code)
	req.NoError(err)
	req.Equal([]domain.ChatMessage{message}, messages)
}

func TestChatRepository_FailedWriteLeavesLogUntouched(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	local := mocks.NewMockLocalStorage(ctrl)
	repository := NewChatRepository(local, slog.Default())
	code := domain.MeetingCode("room-1")

	local.EXPECT().GetItem(ChatKey(code)).Return("", false, nil).Times(2)
	local.EXPECT().SetItem(ChatKey(code), gomock.Any()).Return(badger.ErrDBClosed)
	err := repository.Append(code, domain.NewSentMessage("lost", time.Now()))
	req.ErrorIs(err, badger.ErrDBClosed)

	// Nothing was committed, so the next append persists a single message.
	message := domain.NewSentMessage("kept", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))
	local.EXPECT().SetItem(ChatKey(code), `[{"id":1772357400000,"text":"kept","sender":"You","timestamp":"2026-03-01T09:30:00.000Z","type":"sent"}]`).Return(nil)
	req.NoError(repository.Append(code, message))
}

func TestMeetingRepository_SaveFind(t *testing.T) {
	req := require.New(t)
	repository := NewMeetingRepository(badgerStorage(t))
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	meeting := domain.Meeting{
		Code:       domain.GenerateMeetingCode("user_1", at),
		Title:      "Weekly sync",
		HostUserID: "user_1",
		Active:     true,
		CreatedAt:  at,
	}

	_, err := repository.FindByCode(meeting.Code)
	req.ErrorIs(err, errors.ErrMeetingNotFound)

	req.NoError(repository.Save(meeting))
	found, err := repository.FindByCode(meeting.Code)
	req.NoError(err)
	req.Equal(meeting, found)
}
