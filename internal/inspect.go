package internal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/repositories"

	"github.com/samber/lo"
)

const maxDetail = 40

type InspectRow struct {
	Key    string
	Kind   string
	Size   int
	Detail string
}

type RowMapper func(key, value string) InspectRow

// Collect reads every key under prefix and maps it to a row.
func Collect(storage contract.LocalStorage, prefix string, mapper RowMapper) ([]InspectRow, error) {
	if mapper == nil {
		mapper = DefaultMapper
	}
	keys, err := storage.Keys(prefix)
	if err != nil {
		return nil, err
	}
	rows := make([]InspectRow, 0, len(keys))
	for _, key := range keys {
		value, ok, err := storage.GetItem(key)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		if !ok {
			continue
		}
		rows = append(rows, mapper(key, value))
	}
	return rows, nil
}

// DefaultMapper recognises the keys written by the repositories.
func DefaultMapper(key, value string) InspectRow {
	row := InspectRow{Key: key, Kind: "raw", Size: len(value), Detail: "Size: " + strconv.Itoa(len(value)) + " bytes"}

	switch {
	case key == repositories.KeyAuthToken:
		row.Kind, row.Detail = "session", truncate(value)
	case key == repositories.KeySavedEmail:
		row.Kind, row.Detail = "remember", value
	case key == repositories.KeyUserData:
		row.Kind = "profile"
		var user domain.User
		if err := json.Unmarshal([]byte(value), &user); err != nil {
			row.Detail = "unreadable"
			break
		}
		row.Detail = fmt.Sprintf("%s <%s> since %s", user.Name, user.Email, user.JoinedDate)
	case strings.HasPrefix(key, repositories.ChatKeyPrefix):
		row.Kind = "chat"
		var messages []domain.ChatMessage
		if err := json.Unmarshal([]byte(value), &messages); err != nil {
			row.Detail = "unreadable"
			break
		}
		row.Detail = fmt.Sprintf("%d messages", len(messages))
		if n := len(messages); n > 0 {
			row.Detail += ", last: " + truncate(messages[n-1].Text)
		}
	case strings.HasPrefix(key, repositories.MeetingKeyPrefix):
		row.Kind = "meeting"
		var meeting domain.Meeting
		if err := json.Unmarshal([]byte(value), &meeting); err != nil {
			row.Detail = "unreadable"
			break
		}
		row.Detail = fmt.Sprintf("%s (%s)", meeting.Title, lo.Ternary(meeting.Active, "active", "ended"))
	}
	return row
}

// truncate cuts on rune boundaries so the table stays valid UTF-8.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDetail {
		return s
	}
	return string(runes[:maxDetail]) + "..."
}
