package dto

type WebhookRequest struct {
	EventType string         `json:"event_type" validate:"required"`
	Payload   map[string]any `json:"payload"`
}

type WebhookResponse struct {
	Accepted bool   `json:"accepted"`
	Topic    string `json:"topic"`
}

// PublishAutomationEventMessage is the payload shipped over the internal
// pubsub channel between the webhook controller and the consumer.
type PublishAutomationEventMessage struct {
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload"`
}
