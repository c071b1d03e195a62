package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unifyevents/cartgate/internal/domain"
)

type constraintPayload struct {
	ID          int64  `json:"id"`
	Event       int64  `json:"event"`
	BookingType string `json:"booking_type"`
	Fixed       bool   `json:"fixed"`
	LowerLimit  *int   `json:"lower_limit"`
	UpperLimit  *int   `json:"upper_limit"`
}

func (p constraintPayload) toDomain() domain.Constraint {
	return domain.NewConstraint(p.BookingType, p.Fixed, p.LowerLimit, p.UpperLimit)
}

type ConstraintGateway struct {
	client *Client
}

func NewConstraintGateway(client *Client) *ConstraintGateway {
	return &ConstraintGateway{client: client}
}

func (g *ConstraintGateway) GetByID(ctx context.Context, creds *domain.Credentials, id int64) (domain.Constraint, error) {
	var payload constraintPayload
	err := g.client.do(ctx, creds, call{
		op:       "get constraint",
		method:   http.MethodGet,
		url:      fmt.Sprintf("/constraints/%d/", id),
		result:   &payload,
		notFound: domain.ErrConstraintNotFound,
	})
	if err != nil {
		return domain.UnknownConstraint(), err
	}

	return payload.toDomain(), nil
}

// FindByEvent queries constraints filtered by event. The second return value
// is false when the event has no constraint at all.
func (g *ConstraintGateway) FindByEvent(ctx context.Context, creds *domain.Credentials, eventID int64) (domain.Constraint, bool, error) {
	var payload []constraintPayload
	err := g.client.do(ctx, creds, call{
		op:     "find constraint by event",
		method: http.MethodGet,
		url:    fmt.Sprintf("/constraints/?event=%d", eventID),
		result: &payload,
	})
	if err != nil {
		return domain.UnknownConstraint(), false, err
	}

	if len(payload) == 0 {
		return domain.SingleConstraint(), false, nil
	}

	return payload[0].toDomain(), true, nil
}
