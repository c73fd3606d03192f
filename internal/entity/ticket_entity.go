package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	Id        uuid.UUID
	Title     string
	Priority  string
	Status    string
	UserId    *uuid.UUID
	Context   map[string]any
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
