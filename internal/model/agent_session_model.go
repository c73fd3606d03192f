package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentSession struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID     `gorm:"type:uuid;index"` // optional owner, anonymous sessions allowed
	Title     string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AgentSession) TableName() string {
	return "agent_sessions"
}
