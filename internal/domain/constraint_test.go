package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestNewConstraint_Mapping(t *testing.T) {
	tests := []struct {
		name        string
		bookingType string
		fixed       bool
		lower       *int
		upper       *int
		want        Constraint
	}{
		{"single", "single", false, nil, nil, Constraint{Kind: ConstraintSingle}},
		{"fixed uses upper", "multiple", true, nil, intPtr(4), Constraint{Kind: ConstraintFixedMultiple, Size: 4}},
		{"fixed defaults to 1", "multiple", true, nil, nil, Constraint{Kind: ConstraintFixedMultiple, Size: 1}},
		{"range", "multiple", false, intPtr(2), intPtr(6), Constraint{Kind: ConstraintRangeMultiple, Lower: 2, Upper: 6}},
		{"range defaults to [1,1]", "multiple", false, nil, nil, Constraint{Kind: ConstraintRangeMultiple, Lower: 1, Upper: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewConstraint(tt.bookingType, tt.fixed, tt.lower, tt.upper)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConstraint_ValidateCount_Single(t *testing.T) {
	c := SingleConstraint()

	require.NoError(t, c.ValidateCount(1))

	for _, n := range []int{0, 2, 3, 10} {
		err := c.ValidateCount(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "allows only one participant")
	}
}

func TestConstraint_ValidateCount_FixedMultiple(t *testing.T) {
	c := Constraint{Kind: ConstraintFixedMultiple, Size: 4}

	require.NoError(t, c.ValidateCount(4))

	for _, n := range []int{1, 3, 5} {
		err := c.ValidateCount(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "exactly 4 participants")
	}
}

func TestConstraint_ValidateCount_RangeMultiple(t *testing.T) {
	c := Constraint{Kind: ConstraintRangeMultiple, Lower: 2, Upper: 6}

	for n := 2; n <= 6; n++ {
		assert.NoError(t, c.ValidateCount(n), "count %d should be valid", n)
	}
	for _, n := range []int{0, 1, 7, 12} {
		err := c.ValidateCount(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "between 2 and 6")
	}
}

func TestConstraint_ValidateCount_RangeSampled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		lo := 1 + rng.Intn(5)
		hi := lo + rng.Intn(10)
		c := Constraint{Kind: ConstraintRangeMultiple, Lower: lo, Upper: hi}

		n := rng.Intn(hi + 5)
		err := c.ValidateCount(n)
		if n >= lo && n <= hi {
			assert.NoError(t, err, "[%d,%d] count %d", lo, hi, n)
		} else {
			assert.ErrorIs(t, err, ErrValidation, "[%d,%d] count %d", lo, hi, n)
		}
	}
}

func TestConstraint_ValidateCount_Unknown(t *testing.T) {
	err := UnknownConstraint().ValidateCount(1)
	assert.ErrorIs(t, err, ErrConstraintUnavailable)
}

func TestConstraint_CanEditCount(t *testing.T) {
	assert.False(t, SingleConstraint().CanEditCount())
	assert.False(t, Constraint{Kind: ConstraintFixedMultiple, Size: 3}.CanEditCount())
	assert.True(t, Constraint{Kind: ConstraintRangeMultiple, Lower: 1, Upper: 5}.CanEditCount())
	assert.False(t, UnknownConstraint().CanEditCount())
}

func TestConstraint_DefaultCount(t *testing.T) {
	assert.Equal(t, 1, SingleConstraint().DefaultCount())
	assert.Equal(t, 4, Constraint{Kind: ConstraintFixedMultiple, Size: 4}.DefaultCount())
	assert.Equal(t, 2, Constraint{Kind: ConstraintRangeMultiple, Lower: 2, Upper: 6}.DefaultCount())
}

func TestConstraint_NeedsCountChoice(t *testing.T) {
	assert.False(t, SingleConstraint().NeedsCountChoice())
	assert.False(t, Constraint{Kind: ConstraintFixedMultiple, Size: 2}.NeedsCountChoice())
	assert.True(t, Constraint{Kind: ConstraintRangeMultiple, Lower: 1, Upper: 3}.NeedsCountChoice())
}

func TestEventSlot_CanAccommodate(t *testing.T) {
	limited := EventSlot{UnlimitedParticipants: false, AvailableParticipants: 3}
	assert.True(t, limited.CanAccommodate(3))
	assert.False(t, limited.CanAccommodate(4))

	unlimited := EventSlot{UnlimitedParticipants: true}
	assert.True(t, unlimited.CanAccommodate(1000))
}

func TestCartItem_Consistent(t *testing.T) {
	item := CartItem{
		ParticipantsCount: 2,
		TempParticipants: []TempParticipant{
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B"},
		},
	}
	assert.True(t, item.Consistent())

	item.ParticipantsCount = 3
	assert.False(t, item.Consistent())
}
