package domain

import (
	"strings"

	"meet-lab/errors"
)

// ControlPanelState holds the local toggles of the meeting room.
// The zero value is a fresh room: mic and camera on, nothing shared.
// Values are never mutated; every transition returns a new state.
type ControlPanelState struct {
	MicMuted      bool `json:"micMuted"`
	CameraOff     bool `json:"cameraOff"`
	ScreenSharing bool `json:"screenSharing"`
	HandRaised    bool `json:"handRaised"`
}

type Action string

const (
	ActionToggleMic    Action = "mic"
	ActionToggleCamera Action = "camera"
	ActionToggleShare  Action = "share"
	ActionToggleHand   Action = "hand"
	// ActionShareLink has no state transition; the room shows its share link.
	ActionShareLink Action = "link"
)

// Transition is a state change plus the toast to show for it.
type Transition struct {
	State        ControlPanelState `json:"state"`
	Notification string            `json:"notification"`
}

func ToggleMic(s ControlPanelState) Transition {
	s.MicMuted = !s.MicMuted
	return Transition{State: s, Notification: pick(s.MicMuted, "Microphone muted", "Microphone unmuted")}
}

func ToggleCamera(s ControlPanelState) Transition {
	s.CameraOff = !s.CameraOff
	return Transition{State: s, Notification: pick(s.CameraOff, "Camera off", "Camera on")}
}

func ToggleScreenShare(s ControlPanelState) Transition {
	s.ScreenSharing = !s.ScreenSharing
	return Transition{State: s, Notification: pick(s.ScreenSharing, "Started sharing your screen", "Stopped sharing your screen")}
}

func ToggleHand(s ControlPanelState) Transition {
	s.HandRaised = !s.HandRaised
	return Transition{State: s, Notification: pick(s.HandRaised, "Hand raised", "Hand lowered")}
}

var transitions = map[Action]func(ControlPanelState) Transition{
	ActionToggleMic:    ToggleMic,
	ActionToggleCamera: ToggleCamera,
	ActionToggleShare:  ToggleScreenShare,
	ActionToggleHand:   ToggleHand,
}

// Apply runs the transition registered for action.
func Apply(s ControlPanelState, action Action) (Transition, error) {
	fn, ok := transitions[action]
	if !ok {
		return Transition{State: s}, errors.ErrUnknownAction
	}
	return fn(s), nil
}

// KeyPress is a keydown seen by the meeting room page. Typing is set
// when the focus is in a text field.
type KeyPress struct {
	Key      string `json:"key"`
	Modifier bool   `json:"modifier"` // Ctrl or Cmd
	Shift    bool   `json:"shift"`
	Typing   bool   `json:"typing"`
}

// Shortcut maps a Ctrl (or Cmd) key press to its action. Nothing fires
// while the user is typing.
func Shortcut(press KeyPress) (Action, bool) {
	if press.Typing || !press.Modifier {
		return "", false
	}
	key := strings.ToLower(press.Key)
	if press.Shift {
		if key == "c" {
			return ActionShareLink, true
		}
		return "", false
	}
	switch key {
	case "m":
		return ActionToggleMic, true
	case "e":
		return ActionToggleCamera, true
	case "d", "s":
		return ActionToggleShare, true
	case "h":
		return ActionToggleHand, true
	}
	return "", false
}

func pick(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}
