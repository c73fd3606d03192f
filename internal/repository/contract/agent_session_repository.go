package contract

import (
	"context"

	"support-agent-be/internal/entity"
	"support-agent-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AgentSessionRepository interface {
	Create(ctx context.Context, session *entity.AgentSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
