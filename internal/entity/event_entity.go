package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Id        uuid.UUID
	EventType string
	Payload   map[string]any
	CreatedAt time.Time
}
