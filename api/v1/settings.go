package v1

import "time"

type SettingsRequest = CompileSettings

type SettingsResponseBody struct {
	UserID    string          `json:"user_id"`
	Settings  CompileSettings `json:"settings"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

type SettingsResponse struct {
	Response
	Data SettingsResponseBody `json:"data"`
}
