package dto

type ExecuteToolRequest struct {
	ToolName string         `json:"tool_name" validate:"required"`
	ToolArgs map[string]any `json:"tool_args"`
}

type ExecuteToolResponse struct {
	ToolName string         `json:"tool_name"`
	Result   map[string]any `json:"result"`
}

type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}
