package decision

import (
	"context"
)

// ToolCall is a resolved decision to run one tool with the given arguments.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Turn carries everything a decider may inspect for one chat turn.
type Turn struct {
	Message string
	UserId  string // empty when the caller is anonymous
	Context string // formatted memory + sources block
}

// Decider picks at most one tool call for a turn. A nil return means the
// agent answers from retrieval alone; deciders degrade to nil instead of
// failing the turn.
type Decider interface {
	Decide(ctx context.Context, turn Turn) *ToolCall
}
