package service

import (
	"context"
	"sort"
	"testing"

	"support-agent-be/internal/constant"
	"support-agent-be/internal/dto"
	"support-agent-be/internal/entity"
	"support-agent-be/pkg/agent/tools"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToolRegistryCatalog(t *testing.T) {
	registry := BuildToolRegistry(&stubDocumentService{}, &stubBusinessService{})

	names := make([]string, 0)
	for _, d := range registry.List() {
		names = append(names, d.Name)
	}
	expected := []string{
		constant.ToolCreateTicket,
		constant.ToolGetUser,
		constant.ToolLogEvent,
		constant.ToolSaveDocument,
		constant.ToolSearchDocuments,
	}
	sort.Strings(expected)
	assert.Equal(t, expected, names)
}

func TestSaveDocumentTool(t *testing.T) {
	documentSvc := &stubDocumentService{}
	registry := BuildToolRegistry(documentSvc, &stubBusinessService{})

	t.Run("saves trimmed content", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolSaveDocument, map[string]any{
			"content":  "  refund policy text  ",
			"metadata": map[string]any{"category": "billing"},
		})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"status": "saved"}, result)
		assert.Len(t, documentSvc.indexed, 1)
		assert.Equal(t, "refund policy text", documentSvc.indexed[0].Content)
		assert.Equal(t, map[string]any{"category": "billing"}, documentSvc.indexed[0].Metadata)
	})

	t.Run("missing content reported inline", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolSaveDocument, map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"error": "content is required"}, result)
	})

	t.Run("whitespace only content rejected", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolSaveDocument, map[string]any{"content": "   "})
		assert.NoError(t, err)
		assert.Equal(t, "content is required", result["error"])
	})
}

func TestSearchDocumentsTool(t *testing.T) {
	docId := uuid.New()
	documentSvc := &stubDocumentService{
		sources: []dto.SourceItem{
			{Id: docId, Content: "Refunds take 5 days.", Metadata: map[string]any{"category": "billing"}, Score: 0.88},
		},
	}
	registry := BuildToolRegistry(documentSvc, &stubBusinessService{})

	t.Run("default top_k", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolSearchDocuments, map[string]any{
			"query": "refunds",
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{constant.DefaultRagTopK}, documentSvc.topKs)

		results, ok := result["results"].([]map[string]any)
		assert.True(t, ok)
		assert.Len(t, results, 1)
		assert.Equal(t, docId.String(), results[0]["id"])
		assert.Equal(t, "Refunds take 5 days.", results[0]["content"])
		assert.Equal(t, 0.88, results[0]["score"])
	})

	t.Run("top_k as json number", func(t *testing.T) {
		documentSvc.topKs = nil
		_, err := registry.Execute(context.Background(), constant.ToolSearchDocuments, map[string]any{
			"query": "refunds",
			"top_k": float64(2),
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{2}, documentSvc.topKs)
	})
}

func TestGetUserTool(t *testing.T) {
	userId := uuid.New()
	businessSvc := &stubBusinessService{
		user: &entity.User{Id: userId, Email: "demo@acme.com", FullName: "Demo User"},
	}
	registry := BuildToolRegistry(&stubDocumentService{}, businessSvc)

	t.Run("found", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolGetUser, map[string]any{
			"user_id": userId.String(),
		})
		assert.NoError(t, err)
		user, ok := result["user"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, userId.String(), user["id"])
		assert.Equal(t, "demo@acme.com", user["email"])
		assert.Equal(t, "Demo User", user["full_name"])
	})

	t.Run("not found", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolGetUser, map[string]any{
			"user_id": uuid.New().String(),
		})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"user": nil}, result)
	})

	t.Run("malformed uuid treated as absent user", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolGetUser, map[string]any{
			"user_id": "not-a-uuid",
		})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"user": nil}, result)
	})

	t.Run("missing user_id reported inline", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolGetUser, map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"error": "user_id is required"}, result)
	})
}

func TestLogEventTool(t *testing.T) {
	businessSvc := &stubBusinessService{}
	registry := BuildToolRegistry(&stubDocumentService{}, businessSvc)

	t.Run("defaults apply", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolLogEvent, nil)
		assert.NoError(t, err)
		assert.Equal(t, "logged", result["status"])
		assert.Equal(t, constant.DefaultEventType, result["event_type"])
	})

	t.Run("explicit type and payload", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolLogEvent, map[string]any{
			"event_type": "signup",
			"payload":    map[string]any{"plan": "pro"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "signup", result["event_type"])
		assert.Equal(t, map[string]any{"plan": "pro"}, businessSvc.events[len(businessSvc.events)-1].Payload)
	})
}

func TestCreateTicketTool(t *testing.T) {
	ticketId := uuid.New()
	businessSvc := &stubBusinessService{
		ticket: &entity.Ticket{Id: ticketId, Status: constant.DefaultTicketStatus},
	}
	registry := BuildToolRegistry(&stubDocumentService{}, businessSvc)

	t.Run("result shape", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolCreateTicket, map[string]any{
			"title": "export is broken",
		})
		assert.NoError(t, err)
		ticket, ok := result["ticket"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, ticketId.String(), ticket["id"])
		assert.Equal(t, constant.DefaultTicketStatus, ticket["status"])
	})

	t.Run("missing title reported inline", func(t *testing.T) {
		result, err := registry.Execute(context.Background(), constant.ToolCreateTicket, map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"error": "title is required"}, result)
	})

	t.Run("invalid user_id dropped", func(t *testing.T) {
		businessSvc.tickets = nil
		_, err := registry.Execute(context.Background(), constant.ToolCreateTicket, map[string]any{
			"title":   "broken login",
			"user_id": "nope",
		})
		assert.NoError(t, err)
		assert.Len(t, businessSvc.tickets, 1)
		assert.Nil(t, businessSvc.tickets[0].UserId)
	})

	t.Run("unknown tool name", func(t *testing.T) {
		_, err := registry.Execute(context.Background(), "delete_everything", nil)
		assert.ErrorIs(t, err, tools.ErrUnknownTool)
	})
}
