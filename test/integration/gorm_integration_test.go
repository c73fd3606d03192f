package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"support-agent-be/internal/entity"
	"support-agent-be/internal/repository/specification"
	"support-agent-be/internal/repository/unitofwork"
	"support-agent-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.AgentSessionRepository())
	assert.NotNil(t, uow.AgentMessageRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TicketRepository())
	assert.NotNil(t, uow.EventRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})

	t.Run("Check Event Repository", func(t *testing.T) {
		count, err := uow.EventRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Event count: %d", count)
	})

	t.Run("Check Transactional Session With Messages", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.AgentSession{
			Id:    sessionId,
			Title: "Integration Test Session",
		}
		err = uow.AgentSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		err = uow.AgentMessageRepository().Create(ctx, &entity.AgentMessage{
			Id:             uuid.New(),
			AgentSessionId: sessionId,
			Role:           "user",
			Content:        "integration hello",
		})
		assert.NoError(t, err)

		err = uow.AgentMessageRepository().Create(ctx, &entity.AgentMessage{
			Id:             uuid.New(),
			AgentSessionId: sessionId,
			Role:           "assistant",
			Content:        "integration reply",
		})
		assert.NoError(t, err)

		count, err := uow.AgentMessageRepository().Count(ctx, specification.ByAgentSessionID{AgentSessionID: sessionId})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		// Same-transaction rows share a created_at; the serial seq keeps
		// newest-first reads in insertion order anyway.
		messages, err := uow.AgentMessageRepository().FindAll(ctx,
			specification.ByAgentSessionID{AgentSessionID: sessionId},
			specification.RecentFirst{},
		)
		assert.NoError(t, err)
		assert.Len(t, messages, 2)
		assert.Equal(t, "integration reply", messages[0].Content)
		assert.Equal(t, "integration hello", messages[1].Content)
		assert.Greater(t, messages[0].Seq, messages[1].Seq)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Session with Messages in Transaction")
	})

	t.Run("Check Ticket And Event Write", func(t *testing.T) {
		ctx := context.Background()

		ticketId := uuid.New()
		err := uow.TicketRepository().Create(ctx, &entity.Ticket{
			Id:       ticketId,
			Title:    "Integration Ticket " + uuid.New().String(),
			Priority: "medium",
			Status:   "open",
			Context:  map[string]any{"source": "integration"},
		})
		assert.NoError(t, err)

		ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: ticketId})
		assert.NoError(t, err)
		assert.NotNil(t, ticket)
		assert.Equal(t, "open", ticket.Status)

		_, err = uow.EventRepository().Count(ctx, specification.ByEventType{EventType: "generic"})
		assert.NoError(t, err)
	})
}
