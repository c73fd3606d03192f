package service

import (
	"context"
	"time"

	"support-agent-be/internal/constant"
	"support-agent-be/internal/entity"
	"support-agent-be/internal/pkg/apperror"
	"support-agent-be/internal/pkg/logger"
	"support-agent-be/internal/repository/specification"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/pkg/events"
	pktNats "support-agent-be/pkg/nats"

	"github.com/google/uuid"
)

type IBusinessService interface {
	CreateTicket(ctx context.Context, title string, priority string, userId *uuid.UUID, ticketContext map[string]any) (*entity.Ticket, error)
	LogEvent(ctx context.Context, eventType string, payload map[string]any) (*entity.Event, error)
	// GetUser returns (nil, nil) when no user carries the id.
	GetUser(ctx context.Context, userId uuid.UUID) (*entity.User, error)
}

type businessService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewBusinessService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IBusinessService {
	return &businessService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *businessService) CreateTicket(ctx context.Context, title string, priority string, userId *uuid.UUID, ticketContext map[string]any) (*entity.Ticket, error) {
	if priority == "" {
		priority = constant.DefaultTicketPriority
	}
	if ticketContext == nil {
		ticketContext = map[string]any{}
	}

	ticket := entity.Ticket{
		Id:        uuid.New(),
		Title:     title,
		Priority:  priority,
		Status:    constant.DefaultTicketStatus,
		UserId:    userId,
		Context:   ticketContext,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TicketRepository().Create(ctx, &ticket); err != nil {
		return nil, apperror.Storage("failed to create ticket", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewTicketCreated(ticket.Id.String(), ticket.Title, ticket.Priority)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("BusinessService", "failed to publish TICKET_CREATED event", map[string]interface{}{
				"ticket_id": ticket.Id.String(),
				"error":     err.Error(),
			})
		}
	}

	return &ticket, nil
}

func (s *businessService) LogEvent(ctx context.Context, eventType string, payload map[string]any) (*entity.Event, error) {
	if eventType == "" {
		eventType = constant.DefaultEventType
	}
	if payload == nil {
		payload = map[string]any{}
	}

	event := entity.Event{
		Id:        uuid.New(),
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventRepository().Create(ctx, &event); err != nil {
		return nil, apperror.Storage("failed to log event", err)
	}
	return &event, nil
}

func (s *businessService) GetUser(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Storage("failed to fetch user", err)
	}
	return user, nil
}
