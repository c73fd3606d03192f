package service

import (
	"context"
	"testing"

	"support-agent-be/internal/entity"
	"support-agent-be/internal/pkg/apperror"
	"support-agent-be/internal/repository/contract"
	"support-agent-be/internal/repository/memory"
	"support-agent-be/internal/repository/specification"
	"support-agent-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAgentSessionRepository struct {
	created []*entity.AgentSession
}

func (r *fakeAgentSessionRepository) Create(ctx context.Context, session *entity.AgentSession) error {
	r.created = append(r.created, session)
	return nil
}

func (r *fakeAgentSessionRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeAgentSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentSession, error) {
	return nil, nil
}

func (r *fakeAgentSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentSession, error) {
	return nil, nil
}

func (r *fakeAgentSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeAgentMessageRepository struct {
	created  []*entity.AgentMessage
	recent   []*entity.AgentMessage
	lastSpec []specification.Specification
}

func (r *fakeAgentMessageRepository) Create(ctx context.Context, message *entity.AgentMessage) error {
	r.created = append(r.created, message)
	return nil
}

func (r *fakeAgentMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error) {
	r.lastSpec = specs
	return r.recent, nil
}

func (r *fakeAgentMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.recent)), nil
}

type fakeUnitOfWork struct {
	sessions *fakeAgentSessionRepository
	messages *fakeAgentMessageRepository
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) AgentSessionRepository() contract.AgentSessionRepository { return u.sessions }
func (u *fakeUnitOfWork) AgentMessageRepository() contract.AgentMessageRepository { return u.messages }
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository         { return nil }
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository                 { return nil }
func (u *fakeUnitOfWork) TicketRepository() contract.TicketRepository             { return nil }
func (u *fakeUnitOfWork) EventRepository() contract.EventRepository               { return nil }

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newMemoryServiceFixture() (IMemoryService, *fakeUnitOfWork, *memory.SessionRepository) {
	uow := &fakeUnitOfWork{
		sessions: &fakeAgentSessionRepository{},
		messages: &fakeAgentMessageRepository{},
	}
	sessionCache := memory.NewSessionRepository()
	svc := NewMemoryService(&fakeRepositoryFactory{uow: uow}, sessionCache)
	return svc, uow, sessionCache
}

func TestEnsureSessionPassthrough(t *testing.T) {
	svc, uow, sessionCache := newMemoryServiceFixture()

	provided := uuid.New()
	got, err := svc.EnsureSession(context.Background(), provided.String(), nil)
	assert.NoError(t, err)
	assert.Equal(t, provided, got)

	// A provided id is taken at face value, no session row is written.
	assert.Empty(t, uow.sessions.created)

	cached, found := sessionCache.Get(provided.String())
	assert.True(t, found)
	assert.Equal(t, provided.String(), cached.ID)
}

func TestEnsureSessionInvalidId(t *testing.T) {
	svc, _, _ := newMemoryServiceFixture()

	_, err := svc.EnsureSession(context.Background(), "not-a-uuid", nil)
	assert.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestEnsureSessionCreatesWhenEmpty(t *testing.T) {
	svc, uow, _ := newMemoryServiceFixture()

	userId := uuid.New()
	got, err := svc.EnsureSession(context.Background(), "", &userId)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got)

	assert.Len(t, uow.sessions.created, 1)
	created := uow.sessions.created[0]
	assert.Equal(t, got, created.Id)
	assert.NotNil(t, created.UserId)
	assert.Equal(t, userId, *created.UserId)
}

func TestCachedUserRemembersIdentity(t *testing.T) {
	svc, _, _ := newMemoryServiceFixture()

	sessionId := uuid.New()
	userId := uuid.New()

	_, err := svc.EnsureSession(context.Background(), sessionId.String(), &userId)
	assert.NoError(t, err)

	got := svc.CachedUser(sessionId)
	assert.NotNil(t, got)
	assert.Equal(t, userId, *got)
}

func TestCachedUserSurvivesAnonymousTurn(t *testing.T) {
	svc, _, _ := newMemoryServiceFixture()

	sessionId := uuid.New()
	userId := uuid.New()

	_, err := svc.EnsureSession(context.Background(), sessionId.String(), &userId)
	assert.NoError(t, err)

	// Follow-up turn without a user id must not erase the cached identity.
	_, err = svc.EnsureSession(context.Background(), sessionId.String(), nil)
	assert.NoError(t, err)

	got := svc.CachedUser(sessionId)
	assert.NotNil(t, got)
	assert.Equal(t, userId, *got)
}

func TestCachedUserUnknownSession(t *testing.T) {
	svc, _, _ := newMemoryServiceFixture()
	assert.Nil(t, svc.CachedUser(uuid.New()))
}

func TestAppendWritesMessage(t *testing.T) {
	svc, uow, _ := newMemoryServiceFixture()

	sessionId := uuid.New()
	err := svc.Append(context.Background(), sessionId, "user", "hello")
	assert.NoError(t, err)

	assert.Len(t, uow.messages.created, 1)
	msg := uow.messages.created[0]
	assert.Equal(t, sessionId, msg.AgentSessionId)
	assert.Equal(t, "user", msg.Role)
	assert.Equal(t, "hello", msg.Content)
}

func TestRecentQueryShape(t *testing.T) {
	svc, uow, _ := newMemoryServiceFixture()

	sessionId := uuid.New()
	uow.messages.recent = []*entity.AgentMessage{
		{AgentSessionId: sessionId, Role: "assistant", Content: "newest"},
		{AgentSessionId: sessionId, Role: "user", Content: "older"},
	}

	messages, err := svc.Recent(context.Background(), sessionId, 6)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "newest", messages[0].Content)

	assert.Equal(t, []specification.Specification{
		specification.ByAgentSessionID{AgentSessionID: sessionId},
		specification.RecentFirst{},
		specification.Pagination{Limit: 6},
	}, uow.messages.lastSpec)
}

func TestRecentDefaultLimit(t *testing.T) {
	svc, uow, _ := newMemoryServiceFixture()

	_, err := svc.Recent(context.Background(), uuid.New(), 0)
	assert.NoError(t, err)
	assert.Contains(t, uow.messages.lastSpec, specification.Pagination{Limit: 6})
}
