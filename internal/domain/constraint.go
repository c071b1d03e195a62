package domain

import "fmt"

type ConstraintKind string

const (
	// ConstraintUnknown means resolution failed; callers decide via policy
	// whether it degrades to Single or blocks the action.
	ConstraintUnknown       ConstraintKind = "unknown"
	ConstraintSingle        ConstraintKind = "single"
	ConstraintFixedMultiple ConstraintKind = "fixed_multiple"
	ConstraintRangeMultiple ConstraintKind = "range_multiple"
)

// Constraint bounds how many participants may register for one event.
// It is a tagged variant; Size is set for fixed_multiple, Lower/Upper
// for range_multiple.
type Constraint struct {
	Kind  ConstraintKind `json:"kind"`
	Size  int            `json:"size,omitempty"`
	Lower int            `json:"lower,omitempty"`
	Upper int            `json:"upper,omitempty"`
}

func SingleConstraint() Constraint {
	return Constraint{Kind: ConstraintSingle}
}

func UnknownConstraint() Constraint {
	return Constraint{Kind: ConstraintUnknown}
}

// NewConstraint maps the upstream wire form (booking_type, fixed, optional
// limits) to the tagged variant. Unset limits default to 1, matching the
// source system.
func NewConstraint(bookingType string, fixed bool, lowerLimit, upperLimit *int) Constraint {
	if bookingType != "multiple" {
		return SingleConstraint()
	}

	upper := 1
	if upperLimit != nil {
		upper = *upperLimit
	}

	if fixed {
		return Constraint{Kind: ConstraintFixedMultiple, Size: upper}
	}

	lower := 1
	if lowerLimit != nil {
		lower = *lowerLimit
	}

	return Constraint{Kind: ConstraintRangeMultiple, Lower: lower, Upper: upper}
}

// ValidateCount reports whether n participants are permitted. The returned
// error wraps ErrValidation with the user-facing message. Unknown constraints
// are never valid here; resolve the policy first.
func (c Constraint) ValidateCount(n int) error {
	switch c.Kind {
	case ConstraintSingle:
		if n != 1 {
			return fmt.Errorf("%w: this event allows only one participant", ErrValidation)
		}
		return nil

	case ConstraintFixedMultiple:
		if n != c.Size {
			return fmt.Errorf("%w: this event requires exactly %d participants", ErrValidation, c.Size)
		}
		return nil

	case ConstraintRangeMultiple:
		if n < c.Lower || n > c.Upper {
			return fmt.Errorf("%w: team size must be between %d and %d", ErrValidation, c.Lower, c.Upper)
		}
		return nil

	default:
		return ErrConstraintUnavailable
	}
}

// CanEditCount is true only for the open-range multiple kind; single and
// fixed-multiple lock the participant count.
func (c Constraint) CanEditCount() bool {
	return c.Kind == ConstraintRangeMultiple
}

// DefaultCount is the count a fresh booking starts with.
func (c Constraint) DefaultCount() int {
	switch c.Kind {
	case ConstraintFixedMultiple:
		return c.Size
	case ConstraintRangeMultiple:
		return c.Lower
	default:
		return 1
	}
}

// NeedsCountChoice is true when the user must pick a team size before
// collecting participants.
func (c Constraint) NeedsCountChoice() bool {
	return c.Kind == ConstraintRangeMultiple
}
