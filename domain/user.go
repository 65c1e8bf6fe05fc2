package domain

// User is the profile saved next to the session token.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	JoinedDate string `json:"joinedDate"`
}

// Session is the client-held proof of a simulated logged-in identity.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
