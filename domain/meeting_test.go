package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateMeetingCode(t *testing.T) {
	at := time.UnixMilli(0x18F2A3B4C5D)

	code := GenerateMeetingCode("user_abc", at)

	require.Equal(t, MeetingCode("user_abc-18F2A3B4C5D"), code)
}

func TestShareLink(t *testing.T) {
	req := require.New(t)

	req.Equal("http://localhost:8080/index?join=abc-defg-hij",
		ShareLink("http://localhost:8080/", DefaultMeetingCode))
	req.Equal("https://meet.example/index?join=a%20b%26c",
		ShareLink("https://meet.example", "a b&c"))
	req.Equal("http://h/index?join=a%20b", ShareLink("http://h", "a b"))
	req.Equal("http://h/index?join=(x)!'*~%2B%2F%3F%C3%A9",
		ShareLink("http://h", "(x)!'*~+/?é"))
}

func TestNewSentMessage(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 1, 9, 30, 15, 250*int(time.Millisecond), time.UTC)

	msg := NewSentMessage("hello", at)

	req.Equal(at.UnixMilli(), msg.ID)
	req.Equal("2026-03-01T09:30:15.250Z", msg.TimestampIso)
	req.Equal(SenderSelf, msg.Sender)
	req.True(msg.IsSent())
}
