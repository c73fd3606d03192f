package service

import (
	"context"
	"strconv"
	"strings"

	"support-agent-be/internal/constant"
	"support-agent-be/internal/dto"
	"support-agent-be/pkg/agent/tools"

	"github.com/google/uuid"
)

// BuildToolRegistry assembles the tool catalog over the service layer.
// Handlers report argument problems inline in the result map; a Go error
// from a handler means the backing store or encoder actually failed.
func BuildToolRegistry(documentService IDocumentService, businessService IBusinessService) *tools.Registry {
	registry := tools.NewRegistry()

	registry.Register(tools.Tool{
		Name:        constant.ToolSaveDocument,
		Description: "Save a document to the knowledge base",
		Parameters: tools.ObjectSchema(map[string]any{
			"content":  tools.StringProperty("Document text to store"),
			"metadata": tools.ObjectProperty("Optional metadata attached to the document"),
		}, "content"),
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			content, _ := args["content"].(string)
			content = strings.TrimSpace(content)
			if content == "" {
				return map[string]any{"error": "content is required"}, nil
			}
			metadata, _ := args["metadata"].(map[string]any)
			if _, err := documentService.Index(ctx, []dto.DocumentInput{{Content: content, Metadata: metadata}}); err != nil {
				return nil, err
			}
			return map[string]any{"status": "saved"}, nil
		},
	})

	registry.Register(tools.Tool{
		Name:        constant.ToolSearchDocuments,
		Description: "Search the knowledge base using a query",
		Parameters: tools.ObjectSchema(map[string]any{
			"query": tools.StringProperty("Search query"),
			"top_k": tools.IntegerProperty("Number of results to return"),
		}, "query"),
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			query, _ := args["query"].(string)
			topK := intArg(args, "top_k")
			if topK <= 0 {
				topK = constant.DefaultRagTopK
			}
			sources, err := documentService.Search(ctx, query, topK)
			if err != nil {
				return nil, err
			}
			results := make([]map[string]any, len(sources))
			for i, src := range sources {
				results[i] = map[string]any{
					"id":       src.Id.String(),
					"content":  src.Content,
					"metadata": src.Metadata,
					"score":    src.Score,
				}
			}
			return map[string]any{"results": results}, nil
		},
	})

	registry.Register(tools.Tool{
		Name:        constant.ToolGetUser,
		Description: "Fetch a user by id",
		Parameters: tools.ObjectSchema(map[string]any{
			"user_id": tools.StringProperty("User uuid"),
		}, "user_id"),
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			userIdStr, _ := args["user_id"].(string)
			if userIdStr == "" {
				return map[string]any{"error": "user_id is required"}, nil
			}
			userId, err := uuid.Parse(userIdStr)
			if err != nil {
				return map[string]any{"user": nil}, nil
			}
			user, err := businessService.GetUser(ctx, userId)
			if err != nil {
				return nil, err
			}
			if user == nil {
				return map[string]any{"user": nil}, nil
			}
			return map[string]any{"user": map[string]any{
				"id":        user.Id.String(),
				"email":     user.Email,
				"full_name": user.FullName,
			}}, nil
		},
	})

	registry.Register(tools.Tool{
		Name:        constant.ToolLogEvent,
		Description: "Log a business event",
		Parameters: tools.ObjectSchema(map[string]any{
			"event_type": tools.StringProperty("Event code, defaults to generic"),
			"payload":    tools.ObjectProperty("Arbitrary event payload"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			eventType, _ := args["event_type"].(string)
			payload, _ := args["payload"].(map[string]any)
			event, err := businessService.LogEvent(ctx, eventType, payload)
			if err != nil {
				return nil, err
			}
			return map[string]any{"status": "logged", "event_type": event.EventType}, nil
		},
	})

	registry.Register(tools.Tool{
		Name:        constant.ToolCreateTicket,
		Description: "Create a support ticket",
		Parameters: tools.ObjectSchema(map[string]any{
			"title":    tools.StringProperty("Short ticket title"),
			"priority": tools.StringProperty("Ticket priority, defaults to medium"),
			"user_id":  tools.StringProperty("Optional reporter uuid"),
			"context":  tools.ObjectProperty("Optional context attached to the ticket"),
		}, "title"),
		Handler: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			title, _ := args["title"].(string)
			title = strings.TrimSpace(title)
			if title == "" {
				return map[string]any{"error": "title is required"}, nil
			}
			priority, _ := args["priority"].(string)
			ticketContext, _ := args["context"].(map[string]any)

			var userId *uuid.UUID
			if raw, _ := args["user_id"].(string); raw != "" {
				if parsed, err := uuid.Parse(raw); err == nil {
					userId = &parsed
				}
			}

			ticket, err := businessService.CreateTicket(ctx, title, priority, userId, ticketContext)
			if err != nil {
				return nil, err
			}
			return map[string]any{"ticket": map[string]any{
				"id":     ticket.Id.String(),
				"status": ticket.Status,
			}}, nil
		},
	})

	return registry
}

// intArg reads a numeric argument that may arrive as a JSON number, an int
// from internal callers, or a numeric string.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
