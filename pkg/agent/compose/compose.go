package compose

import (
	"fmt"
	"strings"

	"support-agent-be/internal/dto"
	"support-agent-be/internal/entity"
)

// Truncate returns the first n characters of s, counted in runes so
// multibyte input never gets cut mid-character.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatContext renders memory and retrieved sources into the text block
// handed to the planning and answer prompts.
func FormatContext(sources []dto.SourceItem, memory []*entity.AgentMessage) string {
	lines := []string{"Memory:"}
	for _, msg := range memory {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	lines = append(lines, "", "Sources:")
	for _, src := range sources {
		lines = append(lines, fmt.Sprintf("[score=%.3f] %s", src.Score, src.Content))
	}
	return strings.Join(lines, "\n")
}

// Answer builds the deterministic reply: a knowledge-base header, up to
// displayLimit source snippets, then the action line. The full source list
// still travels in the response payload, the cap only limits the prose.
func Answer(sources []dto.SourceItem, displayLimit int, ticketId string) string {
	var b strings.Builder
	b.WriteString("Based on the knowledge base:\n")
	for i, src := range sources {
		if i >= displayLimit {
			break
		}
		fmt.Fprintf(&b, "- %s...\n", Truncate(src.Content, 100))
	}
	if ticketId != "" {
		fmt.Fprintf(&b, "\nTicket created: %s", ticketId)
	} else {
		b.WriteString("\nNo specific action taken. Information retrieved from knowledge base.")
	}
	return b.String()
}
