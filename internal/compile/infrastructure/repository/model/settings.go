package model

import "time"

const TableNameUserSettings = "user_settings"

// UserSettings mapped from table <user_settings>
type UserSettings struct {
	UserID       string    `gorm:"column:user_id;primaryKey;size:128" json:"user_id"`
	Optimization string    `gorm:"column:optimization;size:16" json:"optimization"`
	Warnings     bool      `gorm:"column:warnings" json:"warnings"`
	StrictMode   bool      `gorm:"column:strict_mode" json:"strict_mode"`
	DebugInfo    bool      `gorm:"column:debug_info" json:"debug_info"`
	CustomFlags  string    `gorm:"column:custom_flags;size:512" json:"custom_flags"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName UserSettings's table name
func (*UserSettings) TableName() string {
	return TableNameUserSettings
}
