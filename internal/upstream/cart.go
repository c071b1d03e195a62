package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unifyevents/cartgate/internal/domain"
)

type tempParticipantPayload struct {
	ID          int64   `json:"id"`
	CartItem    int64   `json:"cart_item"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

type tempTimeslotPayload struct {
	ID       int64 `json:"id"`
	CartItem int64 `json:"cart_item"`
	Slot     int64 `json:"slot"`
}

type cartItemPayload struct {
	ID                int64                    `json:"id"`
	Cart              int64                    `json:"cart"`
	Event             int64                    `json:"event"`
	EventName         string                   `json:"event_name"`
	EventPrice        float64                  `json:"event_price"`
	ParticipantsCount int                      `json:"participants_count"`
	TempParticipants  []tempParticipantPayload `json:"temp_participants"`
	TempTimeslot      *tempTimeslotPayload     `json:"temp_timeslot"`
}

type cartPayload struct {
	ID    int64             `json:"id"`
	Items []cartItemPayload `json:"items"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (p tempParticipantPayload) toDomain() domain.TempParticipant {
	return domain.TempParticipant{
		ID:          p.ID,
		CartItemID:  p.CartItem,
		Name:        p.Name,
		Email:       deref(p.Email),
		PhoneNumber: deref(p.PhoneNumber),
	}
}

func (p cartItemPayload) toDomain() domain.CartItem {
	item := domain.CartItem{
		ID:                p.ID,
		CartID:            p.Cart,
		EventID:           p.Event,
		EventName:         p.EventName,
		EventPrice:        p.EventPrice,
		ParticipantsCount: p.ParticipantsCount,
		TempParticipants:  make([]domain.TempParticipant, 0, len(p.TempParticipants)),
	}
	for _, tp := range p.TempParticipants {
		item.TempParticipants = append(item.TempParticipants, tp.toDomain())
	}
	if p.TempTimeslot != nil {
		item.TempTimeslot = &domain.TempTimeslot{
			ID:         p.TempTimeslot.ID,
			CartItemID: p.TempTimeslot.CartItem,
			SlotID:     p.TempTimeslot.Slot,
		}
	}
	return item
}

// optional turns an empty string into an explicit JSON null, the way the
// source client submitted optional participant fields.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type CartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

// GetCart fetches the caller's cart; the upstream creates one on first access.
func (g *CartGateway) GetCart(ctx context.Context, creds *domain.Credentials) (*domain.Cart, error) {
	var payload cartPayload
	err := g.client.do(ctx, creds, call{
		op:       "get cart",
		method:   http.MethodGet,
		url:      "/cart/",
		result:   &payload,
		notFound: domain.ErrCartNotFound,
	})
	if err != nil {
		return nil, err
	}

	cart := &domain.Cart{ID: payload.ID, Items: make([]domain.CartItem, 0, len(payload.Items))}
	for _, item := range payload.Items {
		cart.Items = append(cart.Items, item.toDomain())
	}
	return cart, nil
}

func (g *CartGateway) CreateItem(ctx context.Context, creds *domain.Credentials, input domain.CreateItemInput) (*domain.CartItem, error) {
	var payload cartItemPayload
	err := g.client.do(ctx, creds, call{
		op:     "create cart item",
		method: http.MethodPost,
		url:    "/cartitems/",
		body: map[string]any{
			"cart":               input.CartID,
			"event":              input.EventID,
			"participants_count": input.ParticipantsCount,
		},
		result: &payload,
		// a 404 on create means the referenced event does not exist
		notFound: domain.ErrEventNotFound,
	})
	if err != nil {
		return nil, err
	}

	item := payload.toDomain()
	return &item, nil
}

func (g *CartGateway) UpdateItemCount(ctx context.Context, creds *domain.Credentials, itemID int64, count int) error {
	return g.client.do(ctx, creds, call{
		op:       "update cart item count",
		method:   http.MethodPatch,
		url:      fmt.Sprintf("/cartitems/%d/", itemID),
		body:     map[string]any{"participants_count": count},
		notFound: domain.ErrCartItemNotFound,
	})
}

func (g *CartGateway) DeleteItem(ctx context.Context, creds *domain.Credentials, itemID int64) error {
	return g.client.do(ctx, creds, call{
		op:       "delete cart item",
		method:   http.MethodDelete,
		url:      fmt.Sprintf("/cartitems/%d/", itemID),
		notFound: domain.ErrCartItemNotFound,
	})
}

func (g *CartGateway) CreateParticipant(ctx context.Context, creds *domain.Credentials, itemID int64, d domain.ParticipantDraft) (*domain.TempParticipant, error) {
	var payload tempParticipantPayload
	err := g.client.do(ctx, creds, call{
		op:     "create temp participant",
		method: http.MethodPost,
		url:    "/tempbookings/",
		body: map[string]any{
			"cart_item":    itemID,
			"name":         d.Name,
			"email":        optional(d.Email),
			"phone_number": optional(d.PhoneNumber),
		},
		result: &payload,
	})
	if err != nil {
		return nil, err
	}

	participant := payload.toDomain()
	return &participant, nil
}

func (g *CartGateway) UpdateParticipant(ctx context.Context, creds *domain.Credentials, participantID int64, d domain.ParticipantDraft) error {
	return g.client.do(ctx, creds, call{
		op:     "update temp participant",
		method: http.MethodPatch,
		url:    fmt.Sprintf("/tempbookings/%d/", participantID),
		body: map[string]any{
			"name":         d.Name,
			"email":        optional(d.Email),
			"phone_number": optional(d.PhoneNumber),
		},
		notFound: domain.ErrParticipantNotFound,
	})
}

func (g *CartGateway) DeleteParticipant(ctx context.Context, creds *domain.Credentials, participantID int64) error {
	return g.client.do(ctx, creds, call{
		op:       "delete temp participant",
		method:   http.MethodDelete,
		url:      fmt.Sprintf("/tempbookings/%d/", participantID),
		notFound: domain.ErrParticipantNotFound,
	})
}

func (g *CartGateway) CreateTimeslot(ctx context.Context, creds *domain.Credentials, itemID, slotID int64) (*domain.TempTimeslot, error) {
	var payload tempTimeslotPayload
	err := g.client.do(ctx, creds, call{
		op:     "create temp timeslot",
		method: http.MethodPost,
		url:    "/temp-timeslots/",
		body: map[string]any{
			"cart_item": itemID,
			"slot":      slotID,
		},
		result: &payload,
	})
	if err != nil {
		return nil, err
	}

	return &domain.TempTimeslot{ID: payload.ID, CartItemID: payload.CartItem, SlotID: payload.Slot}, nil
}

func (g *CartGateway) UpdateTimeslot(ctx context.Context, creds *domain.Credentials, timeslotID, itemID, slotID int64) error {
	return g.client.do(ctx, creds, call{
		op:     "update temp timeslot",
		method: http.MethodPatch,
		url:    fmt.Sprintf("/temp-timeslots/%d/", timeslotID),
		body: map[string]any{
			"cart_item": itemID,
			"slot":      slotID,
		},
		notFound: domain.ErrSlotNotFound,
	})
}

func (g *CartGateway) PlaceBooking(ctx context.Context, creds *domain.Credentials) (*domain.Booking, error) {
	var payload domain.Booking
	err := g.client.do(ctx, creds, call{
		op:     "place booking",
		method: http.MethodPost,
		url:    "/bookings/place/",
		result: &payload,
	})
	if err != nil {
		return nil, err
	}

	return &payload, nil
}
