package decision

import (
	"context"

	"support-agent-be/internal/pkg/logger"
	"support-agent-be/pkg/agent/prompt"
	"support-agent-be/pkg/agent/tools"
	"support-agent-be/pkg/llm"
)

// LLMDecider asks the model to pick a tool via the tool-selection prompt.
// Any provider failure or unparseable output degrades to no tool call so a
// flaky model never takes the chat surface down with it.
type LLMDecider struct {
	provider llm.LLMProvider
	registry *tools.Registry
	log      logger.ILogger
}

func NewLLMDecider(provider llm.LLMProvider, registry *tools.Registry, log logger.ILogger) *LLMDecider {
	return &LLMDecider{
		provider: provider,
		registry: registry,
		log:      log,
	}
}

var _ Decider = &LLMDecider{}

func (d *LLMDecider) Decide(ctx context.Context, turn Turn) *ToolCall {
	planning := prompt.ToolSelection(turn.Message, turn.Context, d.registry.List())

	output, err := d.provider.Generate(ctx, planning,
		llm.WithMaxTokens(512),
		llm.WithTemperature(0.2),
	)
	if err != nil {
		d.log.Warn("LLMDecider", "tool selection failed, answering without tool", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	parsed := prompt.ExtractJSON(output)
	if parsed == nil {
		return nil
	}

	action, _ := parsed["action"].(string)
	if action != "tool" {
		return nil
	}

	name, _ := parsed["tool_name"].(string)
	if name == "" {
		return nil
	}

	args, _ := parsed["tool_args"].(map[string]any)
	return &ToolCall{
		Name: name,
		Args: args,
	}
}
