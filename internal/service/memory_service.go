package service

import (
	"context"
	"time"

	"support-agent-be/internal/constant"
	"support-agent-be/internal/entity"
	"support-agent-be/internal/pkg/apperror"
	"support-agent-be/internal/repository/memory"
	"support-agent-be/internal/repository/specification"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/pkg/store"

	"github.com/google/uuid"
)

type IMemoryService interface {
	// EnsureSession returns a usable session id. A provided id is taken at
	// face value without an existence lookup; an empty id creates a new
	// session row.
	EnsureSession(ctx context.Context, sessionId string, userId *uuid.UUID) (uuid.UUID, error)
	Append(ctx context.Context, sessionId uuid.UUID, role string, content string) error
	// Recent returns up to limit messages, newest first.
	Recent(ctx context.Context, sessionId uuid.UUID, limit int) ([]*entity.AgentMessage, error)
	// CachedUser returns the user id remembered for a session from earlier
	// turns, or nil when the session is unknown or anonymous.
	CachedUser(sessionId uuid.UUID) *uuid.UUID
}

type memoryService struct {
	uowFactory   unitofwork.RepositoryFactory
	sessionCache *memory.SessionRepository
}

func NewMemoryService(uowFactory unitofwork.RepositoryFactory, sessionCache *memory.SessionRepository) IMemoryService {
	return &memoryService{
		uowFactory:   uowFactory,
		sessionCache: sessionCache,
	}
}

func (s *memoryService) EnsureSession(ctx context.Context, sessionId string, userId *uuid.UUID) (uuid.UUID, error) {
	if sessionId != "" {
		id, err := uuid.Parse(sessionId)
		if err != nil {
			return uuid.Nil, apperror.InvalidArgument("session_id must be a valid uuid")
		}
		s.cacheSession(id, userId)
		return id, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session := entity.AgentSession{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
	}
	if err := uow.AgentSessionRepository().Create(ctx, &session); err != nil {
		return uuid.Nil, apperror.Storage("failed to create session", err)
	}

	s.cacheSession(session.Id, userId)
	return session.Id, nil
}

func (s *memoryService) cacheSession(id uuid.UUID, userId *uuid.UUID) {
	cached := &store.Session{ID: id.String()}
	if userId != nil {
		cached.UserID = userId.String()
	} else if prev, found := s.sessionCache.Get(id.String()); found {
		// An anonymous turn must not erase the identity seen earlier
		cached.UserID = prev.UserID
	}
	s.sessionCache.Save(cached)
}

func (s *memoryService) CachedUser(sessionId uuid.UUID) *uuid.UUID {
	cached, found := s.sessionCache.Get(sessionId.String())
	if !found || cached.UserID == "" {
		return nil
	}
	id, err := uuid.Parse(cached.UserID)
	if err != nil {
		return nil
	}
	return &id
}

func (s *memoryService) Append(ctx context.Context, sessionId uuid.UUID, role string, content string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	message := entity.AgentMessage{
		Id:             uuid.New(),
		AgentSessionId: sessionId,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := uow.AgentMessageRepository().Create(ctx, &message); err != nil {
		return apperror.Storage("failed to append message", err)
	}
	return nil
}

func (s *memoryService) Recent(ctx context.Context, sessionId uuid.UUID, limit int) ([]*entity.AgentMessage, error) {
	if limit <= 0 {
		limit = constant.DefaultMemoryLimit
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.AgentMessageRepository().FindAll(ctx,
		specification.ByAgentSessionID{AgentSessionID: sessionId},
		specification.RecentFirst{},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, apperror.Storage("failed to load recent messages", err)
	}
	return messages, nil
}
