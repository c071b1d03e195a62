package upstream

import (
	"context"
	"net/http"

	"github.com/unifyevents/cartgate/internal/domain"
)

type eventPayload struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ConstraintID *int64  `json:"constraint_id"`
}

type EventGateway struct {
	client *Client
}

func NewEventGateway(client *Client) *EventGateway {
	return &EventGateway{client: client}
}

func (g *EventGateway) ListEvents(ctx context.Context, creds *domain.Credentials) ([]domain.Event, error) {
	var payload []eventPayload
	err := g.client.do(ctx, creds, call{
		op:     "browse events",
		method: http.MethodGet,
		url:    "/events/browse/",
		result: &payload,
	})
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(payload))
	for _, p := range payload {
		e := domain.Event{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		}
		if p.ConstraintID != nil {
			e.ConstraintID = *p.ConstraintID
		}
		events = append(events, e)
	}
	return events, nil
}
