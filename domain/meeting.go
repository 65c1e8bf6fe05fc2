package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeetingCode partitions chat history. Only presence is checked.
type MeetingCode string

// DefaultMeetingCode is used when a room is opened without a code.
const DefaultMeetingCode MeetingCode = "abc-defg-hij"

func (c MeetingCode) String() string {
	return string(c)
}

func (c MeetingCode) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

type Meeting struct {
	ID         uuid.UUID   `json:"id"`
	Code       MeetingCode `json:"code"`
	Title      string      `json:"title"`
	HostUserID string      `json:"hostUserId"`
	Active     bool        `json:"active"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// GenerateMeetingCode derives a code from the host and the start instant:
// "<userID>-<milliseconds in upper-case hex>".
func GenerateMeetingCode(userID string, at time.Time) MeetingCode {
	return MeetingCode(fmt.Sprintf("%s-%X", userID, at.UnixMilli()))
}

// componentEscaper turns query escaping into encodeURIComponent escaping,
// which keeps !'()* and writes spaces as %20.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// ShareLink builds the invitation URL for a meeting, escaped the way the
// web client escapes it.
func ShareLink(origin string, code MeetingCode) string {
	return strings.TrimRight(origin, "/") + "/index?join=" + componentEscaper.Replace(url.QueryEscape(code.String()))
}

// Attendance is what the room page needs after starting or joining.
type Attendance struct {
	Meeting     Meeting `json:"meeting"`
	DisplayName string  `json:"displayName"`
	Host        bool    `json:"host"`
}
