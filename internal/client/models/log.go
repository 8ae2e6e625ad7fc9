package models

import "time"

// Well-known activity log actions. The server may emit others; treat the
// field as open-ended.
const (
	ActionUpload = "upload"
	ActionDelete = "delete"
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// LogItem is one entry of the server-side activity log. Read-only from the
// client's perspective.
type LogItem struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
