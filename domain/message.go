// Package domain contains core concepts of the meeting client.
// This file defines chat messages kept in a meeting's local log.
// Messages are immutable once appended.
package domain

import (
	"time"
)

// IsoLayout renders instants the way the browser's toISOString does.
const IsoLayout = "2006-01-02T15:04:05.000Z07:00"

type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// SenderSelf is the display name of messages typed on this device.
const SenderSelf = "You"

// ChatMessage is one entry of a meeting's chat log.
// The JSON names match the entries the web client already wrote to
// local storage, so existing logs replay unchanged.
type ChatMessage struct {
	ID           int64     `json:"id"` // creation time in milliseconds
	Text         string    `json:"text"`
	Sender       string    `json:"sender"`
	TimestampIso string    `json:"timestamp"`
	Direction    Direction `json:"type"`
}

// NewSentMessage stamps a message typed locally at the given instant.
func NewSentMessage(text string, at time.Time) ChatMessage {
	return ChatMessage{
		ID:           at.UnixMilli(),
		Text:         text,
		Sender:       SenderSelf,
		TimestampIso: at.UTC().Format(IsoLayout),
		Direction:    DirectionSent,
	}
}

func (m ChatMessage) IsSent() bool {
	return m.Direction == DirectionSent
}
