package unitofwork

import (
	"context"

	"support-agent-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AgentSessionRepository() contract.AgentSessionRepository
	AgentMessageRepository() contract.AgentMessageRepository
	DocumentRepository() contract.DocumentRepository
	UserRepository() contract.UserRepository
	TicketRepository() contract.TicketRepository
	EventRepository() contract.EventRepository
}
