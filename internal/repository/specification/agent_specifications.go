package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByAgentSessionID struct {
	AgentSessionID uuid.UUID
}

func (s ByAgentSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_session_id = ?", s.AgentSessionID)
}

// RecentFirst orders by insertion recency. The bigserial seq breaks
// created_at ties in true insertion order.
type RecentFirst struct{}

func (s RecentFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, seq DESC")
}

type ByEventType struct {
	EventType string
}

func (s ByEventType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_type = ?", s.EventType)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
