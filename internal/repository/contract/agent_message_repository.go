package contract

import (
	"context"

	"support-agent-be/internal/entity"
	"support-agent-be/internal/repository/specification"
)

type AgentMessageRepository interface {
	Create(ctx context.Context, message *entity.AgentMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
