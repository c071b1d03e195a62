package ports

import (
	"context"

	"github.com/unifyevents/cartgate/internal/domain"
)

type ConstraintGateway interface {
	GetByID(ctx context.Context, creds *domain.Credentials, id int64) (domain.Constraint, error)
	FindByEvent(ctx context.Context, creds *domain.Credentials, eventID int64) (domain.Constraint, bool, error)
}

type EventGateway interface {
	ListEvents(ctx context.Context, creds *domain.Credentials) ([]domain.Event, error)
}

type SlotGateway interface {
	ListByEvent(ctx context.Context, creds *domain.Credentials, eventID int64) ([]domain.EventSlot, error)
	GetByID(ctx context.Context, creds *domain.Credentials, id int64) (*domain.EventSlot, error)
}

type CartGateway interface {
	GetCart(ctx context.Context, creds *domain.Credentials) (*domain.Cart, error)
	CreateItem(ctx context.Context, creds *domain.Credentials, input domain.CreateItemInput) (*domain.CartItem, error)
	UpdateItemCount(ctx context.Context, creds *domain.Credentials, itemID int64, count int) error
	DeleteItem(ctx context.Context, creds *domain.Credentials, itemID int64) error
	CreateParticipant(ctx context.Context, creds *domain.Credentials, itemID int64, d domain.ParticipantDraft) (*domain.TempParticipant, error)
	UpdateParticipant(ctx context.Context, creds *domain.Credentials, participantID int64, d domain.ParticipantDraft) error
	DeleteParticipant(ctx context.Context, creds *domain.Credentials, participantID int64) error
	CreateTimeslot(ctx context.Context, creds *domain.Credentials, itemID, slotID int64) (*domain.TempTimeslot, error)
	UpdateTimeslot(ctx context.Context, creds *domain.Credentials, timeslotID, itemID, slotID int64) error
	PlaceBooking(ctx context.Context, creds *domain.Credentials) (*domain.Booking, error)
}
