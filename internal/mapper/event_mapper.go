package mapper

import (
	"support-agent-be/internal/entity"
	"support-agent-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}

	return &entity.Event{
		Id:        e.Id,
		EventType: e.EventType,
		Payload:   fromJSONColumn(e.Payload),
		CreatedAt: e.CreatedAt,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}

	return &model.Event{
		Id:        e.Id,
		EventType: e.EventType,
		Payload:   toJSONColumn(e.Payload),
		CreatedAt: e.CreatedAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
