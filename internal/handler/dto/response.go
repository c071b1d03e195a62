package dto

import (
	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service"
)

type EventResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ConstraintID int64   `json:"constraint_id,omitempty"`
}

type ConstraintResponse struct {
	Kind  string `json:"kind"`
	Size  int    `json:"size,omitempty"`
	Lower int    `json:"lower,omitempty"`
	Upper int    `json:"upper,omitempty"`
}

type SlotResponse struct {
	ID                    int64  `json:"id"`
	Date                  string `json:"date"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	UnlimitedParticipants bool   `json:"unlimited_participants"`
	MaxParticipants       int    `json:"max_participants"`
	AvailableParticipants int    `json:"available_participants"`
	CanFit                bool   `json:"can_fit"`
}

type FlowStatusResponse struct {
	Stage            string              `json:"stage"`
	EventID          int64               `json:"event_id"`
	EventName        string              `json:"event_name"`
	Constraint       ConstraintResponse  `json:"constraint"`
	Count            int                 `json:"count,omitempty"`
	ParticipantIndex int                 `json:"participant_index"`
	ParticipantTotal int                 `json:"participant_total"`
	Current          *ParticipantRequest `json:"current,omitempty"`
}

type ParticipantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type TimeslotResponse struct {
	ID     int64 `json:"id"`
	SlotID int64 `json:"slot_id"`
}

type CartItemResponse struct {
	ID                int64                 `json:"id"`
	EventID           int64                 `json:"event_id"`
	EventName         string                `json:"event_name"`
	EventPrice        float64               `json:"event_price"`
	ParticipantsCount int                   `json:"participants_count"`
	Participants      []ParticipantResponse `json:"participants"`
	Slot              *TimeslotResponse     `json:"slot,omitempty"`
	LineTotal         float64               `json:"line_total"`
	Consistent        bool                  `json:"consistent"`
}

type CartResponse struct {
	ID    int64              `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type TeamSizeResponse struct {
	Count              int  `json:"count"`
	SlotRepickRequired bool `json:"slot_repick_required"`
}

type BookingResponse struct {
	ID          int64   `json:"id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Price:        e.Price,
		ConstraintID: e.ConstraintID,
	}
}

func ToConstraintResponse(c domain.Constraint) ConstraintResponse {
	return ConstraintResponse{
		Kind:  string(c.Kind),
		Size:  c.Size,
		Lower: c.Lower,
		Upper: c.Upper,
	}
}

func ToSlotResponse(o service.SlotOption) SlotResponse {
	return SlotResponse{
		ID:                    o.ID,
		Date:                  o.Date,
		StartTime:             o.StartTime,
		EndTime:               o.EndTime,
		UnlimitedParticipants: o.UnlimitedParticipants,
		MaxParticipants:       o.MaxParticipants,
		AvailableParticipants: o.AvailableParticipants,
		CanFit:                o.CanFit,
	}
}

func ToFlowStatusResponse(st *service.FlowStatus) FlowStatusResponse {
	resp := FlowStatusResponse{
		Stage:            string(st.Stage),
		EventID:          st.EventID,
		EventName:        st.EventName,
		Constraint:       ToConstraintResponse(st.Constraint),
		Count:            st.Count,
		ParticipantIndex: st.ParticipantIndex,
		ParticipantTotal: st.ParticipantTotal,
	}
	if st.Current.Name != "" {
		resp.Current = &ParticipantRequest{
			Name:        st.Current.Name,
			Email:       st.Current.Email,
			PhoneNumber: st.Current.PhoneNumber,
		}
	}
	return resp
}

func ToParticipantResponse(p domain.TempParticipant) ParticipantResponse {
	return ParticipantResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

func ToCartItemResponse(i *domain.CartItem) CartItemResponse {
	participants := make([]ParticipantResponse, 0, len(i.TempParticipants))
	for _, p := range i.TempParticipants {
		participants = append(participants, ToParticipantResponse(p))
	}

	resp := CartItemResponse{
		ID:                i.ID,
		EventID:           i.EventID,
		EventName:         i.EventName,
		EventPrice:        i.EventPrice,
		ParticipantsCount: i.ParticipantsCount,
		Participants:      participants,
		LineTotal:         i.LineTotal(),
		Consistent:        i.Consistent(),
	}
	if i.TempTimeslot != nil {
		resp.Slot = &TimeslotResponse{ID: i.TempTimeslot.ID, SlotID: i.TempTimeslot.SlotID}
	}
	return resp
}

func ToCartResponse(c *domain.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	total := 0.0
	for i := range c.Items {
		items = append(items, ToCartItemResponse(&c.Items[i]))
		total += c.Items[i].LineTotal()
	}
	return CartResponse{ID: c.ID, Items: items, Total: total}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
}
