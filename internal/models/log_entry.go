package models

import (
	"time"
)

// LogEntry 审计日志，只追加，正常流程不会更新或删除
type LogEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Event     string    `gorm:"size:100;not null" json:"event"`
	Details   string    `gorm:"type:text;not null" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func (LogEntry) TableName() string {
	return "logs"
}
