package model

import "time"

const TableNameTaskInfo = "task_info"

// TaskInfo mapped from table <task_info>
type TaskInfo struct {
	ID        string    `gorm:"column:id;primaryKey;size:32" json:"id"`
	SubmitID  string    `gorm:"column:submit_id;index;size:128" json:"submit_id"`
	UserID    string    `gorm:"column:user_id;index;size:128" json:"user_id"`
	Language  string    `gorm:"column:language;size:16;not null" json:"language"`
	Code      string    `gorm:"column:code;type:text;not null" json:"code"`
	Settings  string    `gorm:"column:settings;type:text" json:"settings"`
	Status    byte      `gorm:"column:status;not null;default:0" json:"status"`
	Result    *string   `gorm:"column:result;type:text" json:"result"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName TaskInfo's table name
func (*TaskInfo) TableName() string {
	return TableNameTaskInfo
}
