package events

import "time"

const (
	TypeTicketCreated   = "TICKET_CREATED"
	TypeDocumentIndexed = "DOCUMENT_INDEXED"
)

// NewTicketCreated builds the fanout event emitted after a support ticket
// lands in storage.
func NewTicketCreated(ticketId string, title string, priority string) Event {
	return BaseEvent{
		Type: TypeTicketCreated,
		Data: map[string]interface{}{
			"ticket_id": ticketId,
			"title":     title,
			"priority":  priority,
		},
		OccurredAt: time.Now(),
	}
}

// NewDocumentIndexed builds the fanout event emitted after a batch of
// documents is embedded and stored.
func NewDocumentIndexed(count int) Event {
	return BaseEvent{
		Type: TypeDocumentIndexed,
		Data: map[string]interface{}{
			"count": count,
		},
		OccurredAt: time.Now(),
	}
}
