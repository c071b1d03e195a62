package domain

// Cart mirrors the upstream user cart for one editing session. The gateway
// owns none of it; the upstream API is the source of truth.
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ID                int64             `json:"id"`
	CartID            int64             `json:"cart_id"`
	EventID           int64             `json:"event_id"`
	EventName         string            `json:"event_name"`
	EventPrice        float64           `json:"event_price"`
	ParticipantsCount int               `json:"participants_count"`
	TempParticipants  []TempParticipant `json:"temp_participants"`
	TempTimeslot      *TempTimeslot     `json:"temp_timeslot"`
}

// Consistent checks the invariant that participants_count matches the
// attached temp participants. A mismatch is a transient state that must be
// resolved before checkout.
func (i CartItem) Consistent() bool {
	return i.ParticipantsCount == len(i.TempParticipants)
}

func (i CartItem) LineTotal() float64 {
	return i.EventPrice * float64(i.ParticipantsCount)
}

// TempParticipant is a provisional team member attached to a cart item,
// converted to a permanent booking at checkout by the upstream.
type TempParticipant struct {
	ID          int64  `json:"id"`
	CartItemID  int64  `json:"cart_item_id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// TempTimeslot binds a cart item to an event slot. At most one per item;
// later picks update it in place.
type TempTimeslot struct {
	ID         int64 `json:"id"`
	CartItemID int64 `json:"cart_item_id"`
	SlotID     int64 `json:"slot_id"`
}

type CreateItemInput struct {
	CartID            int64
	EventID           int64
	ParticipantsCount int
}

// Booking is the upstream's receipt for a placed order.
type Booking struct {
	ID          int64   `json:"id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}
