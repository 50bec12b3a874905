package domain

import "time"

// Session binds a session slot to the user logged in on it. A slot with no
// row has no session.
type Session struct {
	Slot      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
