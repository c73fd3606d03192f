package dto

import (
	"github.com/google/uuid"
)

type ChatRequest struct {
	SessionId string     `json:"session_id"`
	UserId    *uuid.UUID `json:"user_id"`
	Message   string     `json:"message" validate:"required"`
}

type ChatResponse struct {
	SessionId string       `json:"session_id"`
	Answer    string       `json:"answer"`
	Sources   []SourceItem `json:"sources"`
}

// SourceItem is one retrieved passage with its cosine similarity score.
type SourceItem struct {
	Id       uuid.UUID      `json:"id"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Score    float64        `json:"score"`
}
