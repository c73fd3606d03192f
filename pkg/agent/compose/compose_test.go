package compose

import (
	"strings"
	"testing"

	"support-agent-be/internal/dto"
	"support-agent-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("", 10))

	// Multibyte input must not be cut mid-rune.
	assert.Equal(t, "héll", Truncate("héllo", 4))
	assert.Equal(t, "日本", Truncate("日本語", 2))
}

func TestFormatContext(t *testing.T) {
	sources := []dto.SourceItem{
		{Id: uuid.New(), Content: "Refunds take 5 business days.", Score: 0.912},
		{Id: uuid.New(), Content: "Contact support via chat.", Score: 0.4},
	}
	memory := []*entity.AgentMessage{
		{Role: "user", Content: "how do refunds work?"},
		{Role: "assistant", Content: "Refunds are processed automatically."},
	}

	out := FormatContext(sources, memory)

	expected := strings.Join([]string{
		"Memory:",
		"user: how do refunds work?",
		"assistant: Refunds are processed automatically.",
		"",
		"Sources:",
		"[score=0.912] Refunds take 5 business days.",
		"[score=0.400] Contact support via chat.",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestFormatContextEmpty(t *testing.T) {
	out := FormatContext(nil, nil)
	assert.Equal(t, "Memory:\n\nSources:", out)
}

func TestAnswerWithoutTicket(t *testing.T) {
	sources := []dto.SourceItem{
		{Content: "First snippet."},
		{Content: "Second snippet."},
		{Content: "Third snippet, never shown."},
	}

	out := Answer(sources, 2, "")

	assert.Equal(t,
		"Based on the knowledge base:\n"+
			"- First snippet....\n"+
			"- Second snippet....\n"+
			"\nNo specific action taken. Information retrieved from knowledge base.",
		out)
	assert.NotContains(t, out, "Third snippet")
}

func TestAnswerWithTicket(t *testing.T) {
	out := Answer([]dto.SourceItem{{Content: "Snippet."}}, 2, "abc-123")

	assert.True(t, strings.HasSuffix(out, "\nTicket created: abc-123"))
	assert.Contains(t, out, "- Snippet....\n")
}

func TestAnswerSnippetTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	out := Answer([]dto.SourceItem{{Content: long}}, 1, "")

	assert.Contains(t, out, "- "+strings.Repeat("x", 100)+"...\n")
	assert.NotContains(t, out, strings.Repeat("x", 101))
}

func TestAnswerNoSources(t *testing.T) {
	out := Answer(nil, 2, "")
	assert.Equal(t,
		"Based on the knowledge base:\n"+
			"\nNo specific action taken. Information retrieved from knowledge base.",
		out)
}
