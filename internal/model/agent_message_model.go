package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgentMessage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgentSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           string    `gorm:"type:varchar(50);not null"`
	Content        string    `gorm:"type:text;not null"`
	// Seq is a bigserial assigned by the database, so rows written within
	// the same timestamp still sort in insertion order.
	Seq       int64          `gorm:"autoIncrement;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (AgentMessage) TableName() string {
	return "agent_messages"
}
