package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"support-agent-be/pkg/agent/tools"
)

const SystemPrompt = `You are a production AI agent for a SaaS support system.
Follow these rules:
- If a tool is needed, request it using the tool JSON format
- If not, respond normally using the provided context
- Keep answers concise and accurate
`

// ToolSelection builds the planning prompt asking the model to pick a tool
// or answer directly, emitting JSON only.
func ToolSelection(userMessage string, context string, descriptors []tools.Descriptor) string {
	toolList := make([]map[string]any, len(descriptors))
	for i, d := range descriptors {
		toolList[i] = map[string]any{
			"name":        d.Name,
			"description": d.Description,
			"args_schema": d.Parameters,
		}
	}
	toolsJson, err := json.MarshalIndent(toolList, "", "  ")
	if err != nil {
		toolsJson = []byte("[]")
	}

	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\n")
	b.WriteString("You must output JSON only.\n")
	b.WriteString("Choose one of:\n")
	b.WriteString(`{"action": "tool", "tool_name": "...", "tool_args": {...}}` + "\n")
	b.WriteString(`{"action": "final", "final": "..."}` + "\n\n")
	fmt.Fprintf(&b, "Context:\n%s\n\n", context)
	fmt.Fprintf(&b, "User message: %s\n\n", userMessage)
	fmt.Fprintf(&b, "Tools:\n%s\n", string(toolsJson))
	return b.String()
}

// FinalResponse builds the answer-composition prompt given the retrieval
// context and an optional tool result.
func FinalResponse(userMessage string, context string, toolResult map[string]any) string {
	toolText := "null"
	if toolResult != nil {
		if raw, err := json.Marshal(toolResult); err == nil {
			toolText = string(raw)
		}
	}

	var b strings.Builder
	b.WriteString(SystemPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Context:\n%s\n\n", context)
	fmt.Fprintf(&b, "User message: %s\n\n", userMessage)
	fmt.Fprintf(&b, "Tool result: %s\n\n", toolText)
	b.WriteString("Respond to the user.")
	return b.String()
}

// ExtractJSON pulls the first top-level JSON object out of model output.
// Returns nil when no parseable object is present.
func ExtractJSON(text string) map[string]any {
	if text == "" {
		return nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return nil
	}
	return result
}
