package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unifyevents/cartgate/internal/domain"
)

type slotPayload struct {
	ID                    int64  `json:"id"`
	Event                 int64  `json:"event"`
	Date                  string `json:"date"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	UnlimitedParticipants bool   `json:"unlimited_participants"`
	MaxParticipants       int    `json:"max_participants"`
	AvailableParticipants int    `json:"available_participants"`
}

func (p slotPayload) toDomain() domain.EventSlot {
	return domain.EventSlot{
		ID:                    p.ID,
		EventID:               p.Event,
		Date:                  p.Date,
		StartTime:             p.StartTime,
		EndTime:               p.EndTime,
		UnlimitedParticipants: p.UnlimitedParticipants,
		MaxParticipants:       p.MaxParticipants,
		AvailableParticipants: p.AvailableParticipants,
	}
}

type SlotGateway struct {
	client *Client
}

func NewSlotGateway(client *Client) *SlotGateway {
	return &SlotGateway{client: client}
}

func (g *SlotGateway) ListByEvent(ctx context.Context, creds *domain.Credentials, eventID int64) ([]domain.EventSlot, error) {
	var payload []slotPayload
	err := g.client.do(ctx, creds, call{
		op:     "list event slots",
		method: http.MethodGet,
		url:    fmt.Sprintf("/event-slots/?event_id=%d", eventID),
		result: &payload,
	})
	if err != nil {
		return nil, err
	}

	slots := make([]domain.EventSlot, 0, len(payload))
	for _, p := range payload {
		slots = append(slots, p.toDomain())
	}
	return slots, nil
}

func (g *SlotGateway) GetByID(ctx context.Context, creds *domain.Credentials, id int64) (*domain.EventSlot, error) {
	var payload slotPayload
	err := g.client.do(ctx, creds, call{
		op:       "get slot",
		method:   http.MethodGet,
		url:      fmt.Sprintf("/event-slots/%d/", id),
		result:   &payload,
		notFound: domain.ErrSlotNotFound,
	})
	if err != nil {
		return nil, err
	}

	slot := payload.toDomain()
	return &slot, nil
}
