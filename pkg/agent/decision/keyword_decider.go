package decision

import (
	"context"
	"strings"

	"support-agent-be/internal/constant"
	"support-agent-be/pkg/agent/compose"
)

// KeywordDecider triggers ticket creation on the English and Spanish
// keywords, matched case-insensitively against the raw message.
type KeywordDecider struct{}

func NewKeywordDecider() *KeywordDecider {
	return &KeywordDecider{}
}

var _ Decider = &KeywordDecider{}

func (d *KeywordDecider) Decide(ctx context.Context, turn Turn) *ToolCall {
	lowered := strings.ToLower(turn.Message)
	if !strings.Contains(lowered, "ticket") && !strings.Contains(lowered, "crear") {
		return nil
	}

	var userId any
	if turn.UserId != "" {
		userId = turn.UserId
	}

	return &ToolCall{
		Name: constant.ToolCreateTicket,
		Args: map[string]any{
			"title":    compose.Truncate(turn.Message, constant.TicketTitleMaxChars),
			"priority": constant.DefaultTicketPriority,
			"user_id":  userId,
			"context":  map[string]any{"source": "chat"},
		},
	}
}
