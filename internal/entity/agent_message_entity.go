package entity

import (
	"time"

	"github.com/google/uuid"
)

type AgentMessage struct {
	Id             uuid.UUID
	AgentSessionId uuid.UUID
	Role           string
	Content        string
	Seq            int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
