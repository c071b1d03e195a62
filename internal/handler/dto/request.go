package dto

import "github.com/unifyevents/cartgate/internal/domain"

type StartFlowRequest struct {
	EventID      int64  `json:"event_id" binding:"required"`
	EventName    string `json:"event_name"`
	ConstraintID int64  `json:"constraint_id"`
}

type ChooseCountRequest struct {
	Count int `json:"count" binding:"required,gt=0"`
}

type ParticipantRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type PickSlotRequest struct {
	SlotID int64 `json:"slot_id" binding:"required"`
}

type TeamSizeRequest struct {
	Count           int                  `json:"count" binding:"required,gt=0"`
	NewParticipants []ParticipantRequest `json:"new_participants"`
}

type ChangeSlotRequest struct {
	SlotID int64 `json:"slot_id" binding:"required"`
}

func (r ParticipantRequest) ToDraft() domain.ParticipantDraft {
	return domain.ParticipantDraft{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}
