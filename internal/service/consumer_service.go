package service

import (
	"context"
	"encoding/json"
	"log"

	"support-agent-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the automation webhook topic and persists each
// event through the business service, keeping webhook ingest off the
// request path.
type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	businessService IBusinessService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	businessService IBusinessService,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		businessService: businessService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAutomationEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal automation event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if _, err := cs.businessService.LogEvent(ctx, payload.EventType, payload.Payload); err != nil {
		log.Printf("[ERROR] Failed to persist automation event %s: %v", payload.EventType, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
