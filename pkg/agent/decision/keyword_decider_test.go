package decision

import (
	"context"
	"strings"
	"testing"

	"support-agent-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestKeywordDeciderTriggers(t *testing.T) {
	decider := NewKeywordDecider()

	testCases := []struct {
		name     string
		message  string
		expected bool
	}{
		{"ticket keyword", "please open a ticket for me", true},
		{"uppercase ticket", "I need a TICKET now", true},
		{"spanish crear", "quiero crear un reporte", true},
		{"substring match", "tickets keep piling up", true},
		{"plain question", "how do I reset my password?", false},
		{"empty message", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			call := decider.Decide(context.Background(), Turn{Message: tc.message})
			if tc.expected {
				assert.NotNil(t, call)
				assert.Equal(t, constant.ToolCreateTicket, call.Name)
			} else {
				assert.Nil(t, call)
			}
		})
	}
}

func TestKeywordDeciderArgs(t *testing.T) {
	decider := NewKeywordDecider()

	call := decider.Decide(context.Background(), Turn{
		Message: "open a ticket for the billing outage",
		UserId:  "6f9619ff-8b86-d011-b42d-00c04fc964ff",
	})

	assert.NotNil(t, call)
	assert.Equal(t, "open a ticket for the billing outage", call.Args["title"])
	assert.Equal(t, constant.DefaultTicketPriority, call.Args["priority"])
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", call.Args["user_id"])
	assert.Equal(t, map[string]any{"source": "chat"}, call.Args["context"])
}

func TestKeywordDeciderNilUserId(t *testing.T) {
	decider := NewKeywordDecider()

	call := decider.Decide(context.Background(), Turn{Message: "crear ticket"})

	assert.NotNil(t, call)
	assert.Nil(t, call.Args["user_id"])
}

func TestKeywordDeciderTitleTruncation(t *testing.T) {
	decider := NewKeywordDecider()

	long := "ticket " + strings.Repeat("é", 200)
	call := decider.Decide(context.Background(), Turn{Message: long})

	assert.NotNil(t, call)
	title, ok := call.Args["title"].(string)
	assert.True(t, ok)
	assert.Equal(t, constant.TicketTitleMaxChars, len([]rune(title)))
	assert.Equal(t, string([]rune(long)[:constant.TicketTitleMaxChars]), title)
}
