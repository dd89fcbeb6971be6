package aggregate

import "time"

// UserSettings is the editor configuration remembered for one user.
type UserSettings struct {
	UserID    string    `json:"user_id"`
	Settings  Settings  `json:"settings"`
	UpdatedAt time.Time `json:"updated_at"`
}
