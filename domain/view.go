package domain

import "time"

// View names a page of the site the client can be sent to.
type View string

const (
	ViewLogin   View = "login"
	ViewSignup  View = "signup"
	ViewIndex   View = "index"
	ViewMeeting View = "meeting"
)

// Navigation tells the presentation layer to leave the current page.
// A zero Navigation means stay.
type Navigation struct {
	To    View          `json:"to,omitempty"`
	After time.Duration `json:"after,omitempty"`
}

func NavigateTo(view View) Navigation {
	return Navigation{To: view}
}

func (n Navigation) Required() bool {
	return n.To != ""
}
