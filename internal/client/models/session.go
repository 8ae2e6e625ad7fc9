package models

// Session is the (token, user) pair representing an authenticated identity
// on this device. Created on login/register, read at startup, cleared on
// logout.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session represents an authenticated identity:
// both the token and the user must be present. One without the other is
// treated as not authenticated.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != ""
}
