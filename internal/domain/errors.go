package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrCartNotFound        = errors.New("cart not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrConstraintNotFound  = errors.New("constraint not found")
	ErrFlowNotFound        = errors.New("no active add-to-cart flow")
)

var (
	ErrSlotCapacity          = errors.New("slot does not have enough capacity")
	ErrCountLocked           = errors.New("participant count is fixed for this event")
	ErrCartInconsistent      = errors.New("cart item participants do not match participants_count")
	ErrConstraintUnavailable = errors.New("participation constraint could not be resolved")
	ErrFlowState             = errors.New("operation not valid in current flow stage")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrUpstream marks failures of the remote booking API. UpstreamError carries
// the call detail and unwraps to the sentinel so handlers can map on errors.Is.
var ErrUpstream = errors.New("upstream request failed")

type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}
