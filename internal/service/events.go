package service

import (
	"context"
	"fmt"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service/ports"
)

type EventService struct {
	events ports.EventGateway
	slots  ports.SlotGateway
}

func NewEventService(events ports.EventGateway, slots ports.SlotGateway) *EventService {
	return &EventService{
		events: events,
		slots:  slots,
	}
}

func (s *EventService) List(ctx context.Context, creds *domain.Credentials) ([]domain.Event, error) {
	return s.events.ListEvents(ctx, creds)
}

// ListSlots returns an event's slots annotated with whether a team of the
// given size fits each one.
func (s *EventService) ListSlots(ctx context.Context, creds *domain.Credentials, eventID int64, participants int) ([]SlotOption, error) {
	if participants < 1 {
		participants = 1
	}

	slots, err := s.slots.ListByEvent(ctx, creds, eventID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	options := make([]SlotOption, 0, len(slots))
	for _, slot := range slots {
		options = append(options, SlotOption{EventSlot: slot, CanFit: slot.CanAccommodate(participants)})
	}
	return options, nil
}
