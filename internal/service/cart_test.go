package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service/ports/mocks"
	"github.com/unifyevents/cartgate/internal/session"
)

type cartFixture struct {
	cart     *mocks.MockCartGateway
	slots    *mocks.MockSlotGateway
	notifier *mocks.MockBookingNotifier
	svc      *CartService
	sess     *session.Session
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	cart := mocks.NewMockCartGateway(t)
	slots := mocks.NewMockSlotGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)
	resolver := NewResolver(mocks.NewMockConstraintGateway(t), PolicyFailOpen, newTestLogger(t))

	return &cartFixture{
		cart:     cart,
		slots:    slots,
		notifier: notifier,
		svc:      NewCartService(cart, slots, resolver, notifier, newTestLogger(t)),
		sess:     newTestSession(),
	}
}

func drafts(names ...string) []domain.ParticipantDraft {
	out := make([]domain.ParticipantDraft, 0, len(names))
	for _, n := range names {
		out = append(out, domain.ParticipantDraft{Name: n})
	}
	return out
}

func openSlot(id int64, available int) *domain.EventSlot {
	return &domain.EventSlot{ID: id, AvailableParticipants: available}
}

func TestCartService_AddToCart(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 2})

	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(openSlot(30, 5), nil)
	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).
		Return(&domain.Cart{ID: 1}, nil)
	f.cart.EXPECT().CreateItem(mock.Anything, mock.Anything, domain.CreateItemInput{
		CartID: 1, EventID: 10, ParticipantsCount: 2,
	}).Return(&domain.CartItem{ID: 100, EventID: 10, ParticipantsCount: 2}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Alice"}).
		Return(&domain.TempParticipant{ID: 201, Name: "Alice"}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Bob"}).
		Return(&domain.TempParticipant{ID: 202, Name: "Bob"}, nil)
	f.cart.EXPECT().CreateTimeslot(mock.Anything, mock.Anything, int64(100), int64(30)).
		Return(&domain.TempTimeslot{ID: 301, CartItemID: 100, SlotID: 30}, nil)

	item, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
		Event:        domain.EventRef{ID: 10},
		Count:        2,
		Participants: drafts("Alice", "Bob"),
		SlotID:       30,
	})
	require.NoError(t, err)
	assert.Len(t, item.TempParticipants, 2)
	require.NotNil(t, item.TempTimeslot)
	assert.Equal(t, int64(30), item.TempTimeslot.SlotID)
}

func TestCartService_AddToCart_ParticipantFailureRollsBack(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 2})

	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(openSlot(30, 5), nil)
	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).
		Return(&domain.Cart{ID: 1}, nil)
	f.cart.EXPECT().CreateItem(mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.CartItem{ID: 100, EventID: 10, ParticipantsCount: 2}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Alice"}).
		Return(&domain.TempParticipant{ID: 201}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Bob"}).
		Return(nil, errors.New("upstream 500"))

	// compensation: the created participant and the item itself are deleted
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(201)).Return(nil)
	f.cart.EXPECT().DeleteItem(mock.Anything, mock.Anything, int64(100)).Return(nil)

	_, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
		Event:        domain.EventRef{ID: 10},
		Count:        2,
		Participants: drafts("Alice", "Bob"),
		SlotID:       30,
	})
	require.Error(t, err)
}

func TestCartService_AddToCart_SlotBindFailureRollsBack(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.SingleConstraint())

	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(openSlot(30, 1), nil)
	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).
		Return(&domain.Cart{ID: 1}, nil)
	f.cart.EXPECT().CreateItem(mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.CartItem{ID: 100, EventID: 10, ParticipantsCount: 1}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), mock.Anything).
		Return(&domain.TempParticipant{ID: 201}, nil)
	f.cart.EXPECT().CreateTimeslot(mock.Anything, mock.Anything, int64(100), int64(30)).
		Return(nil, errors.New("upstream 500"))

	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(201)).Return(nil)
	f.cart.EXPECT().DeleteItem(mock.Anything, mock.Anything, int64(100)).Return(nil)

	_, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
		Event:        domain.EventRef{ID: 10},
		Count:        1,
		Participants: drafts("Alice"),
		SlotID:       30,
	})
	require.Error(t, err)
}

func TestCartService_AddToCart_SlotTooSmall(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 4})

	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(openSlot(30, 3), nil)

	_, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
		Event:        domain.EventRef{ID: 10},
		Count:        4,
		Participants: drafts("a", "b", "c", "d"),
		SlotID:       30,
	})
	assert.ErrorIs(t, err, domain.ErrSlotCapacity)
}

func TestCartService_AddToCart_CountRules(t *testing.T) {
	t.Run("fixed size accepts only the exact count", func(t *testing.T) {
		f := newCartFixture(t)
		f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 4})

		_, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
			Event:        domain.EventRef{ID: 10},
			Count:        3,
			Participants: drafts("a", "b", "c"),
			SlotID:       30,
		})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "exactly 4 participants")
	})

	t.Run("single constraint rejects a pair", func(t *testing.T) {
		f := newCartFixture(t)
		f.sess.CacheConstraint(10, domain.SingleConstraint())

		_, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
			Event:        domain.EventRef{ID: 10},
			Count:        2,
			Participants: drafts("a", "b"),
			SlotID:       30,
		})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "only one participant")
	})

	t.Run("participants must match the count", func(t *testing.T) {
		f := newCartFixture(t)
		f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

		_, err := f.svc.AddToCart(context.Background(), testCreds(), f.sess, AddToCartInput{
			Event:        domain.EventRef{ID: 10},
			Count:        3,
			Participants: drafts("a", "b"),
			SlotID:       30,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func rangeItem(participants int) *domain.Cart {
	item := domain.CartItem{
		ID:                100,
		EventID:           10,
		ParticipantsCount: participants,
		TempTimeslot:      &domain.TempTimeslot{ID: 301, CartItemID: 100, SlotID: 30},
	}
	for i := 0; i < participants; i++ {
		item.TempParticipants = append(item.TempParticipants, domain.TempParticipant{
			ID:         int64(201 + i),
			CartItemID: 100,
		})
	}
	return &domain.Cart{ID: 1, Items: []domain.CartItem{item}}
}

func TestCartService_SetTeamSize_Grow(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 5).Return(nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Dan"}).
		Return(&domain.TempParticipant{ID: 204}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Eve"}).
		Return(&domain.TempParticipant{ID: 205}, nil)
	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(openSlot(30, 8), nil)

	res, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 5, drafts("Dan", "Eve"))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Count)
	assert.False(t, res.SlotRepickRequired)
}

func TestCartService_SetTeamSize_GrowDemandsSlotRepick(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 5).Return(nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), mock.Anything).
		Return(&domain.TempParticipant{ID: 204}, nil).Twice()
	// only 4 seats left in the bound slot, the new team of 5 does not fit
	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(openSlot(30, 4), nil)

	res, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 5, drafts("Dan", "Eve"))
	require.NoError(t, err)
	assert.True(t, res.SlotRepickRequired)
}

func TestCartService_SetTeamSize_GrowSlotRecheckFailure(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 5).Return(nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), mock.Anything).
		Return(&domain.TempParticipant{ID: 204}, nil).Twice()
	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(30)).
		Return(nil, errors.New("upstream down"))

	// the resize committed, so an unverifiable slot reports success with a
	// repick prompt rather than an error
	res, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 5, drafts("Dan", "Eve"))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Count)
	assert.True(t, res.SlotRepickRequired)
}

func TestCartService_SetTeamSize_GrowFailureRestoresCount(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 5).Return(nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Dan"}).
		Return(&domain.TempParticipant{ID: 204}, nil)
	f.cart.EXPECT().CreateParticipant(mock.Anything, mock.Anything, int64(100), domain.ParticipantDraft{Name: "Eve"}).
		Return(nil, errors.New("upstream 500"))

	// compensation: drop the extra that was created, restore the old count
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(204)).Return(nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 3).Return(nil)

	_, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 5, drafts("Dan", "Eve"))
	require.Error(t, err)
}

func TestCartService_SetTeamSize_Shrink(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(5), nil)
	// the two newest entries are removed
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(204)).Return(nil)
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(205)).Return(nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 3).Return(nil)

	res, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func TestCartService_SetTeamSize_ShrinkPartialFailureSettlesCount(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(5), nil)
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(204)).Return(nil)
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(205)).
		Return(errors.New("upstream 500"))

	// one delete landed, so the count settles at what actually remains
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 4).Return(nil)

	_, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 3, nil)
	require.Error(t, err)
}

func TestCartService_SetTeamSize_LockedConstraint(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 3})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)

	_, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 4, drafts("Dan"))
	assert.ErrorIs(t, err, domain.ErrCountLocked)
}

func TestCartService_SetTeamSize_NoopOnSameCount(t *testing.T) {
	f := newCartFixture(t)
	// constraint never consulted for the count check outcome, but the
	// resolver runs before the comparison, so seed the cache
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 3})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)

	res, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 100, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
}

func TestCartService_SetTeamSize_ItemNotFound(t *testing.T) {
	f := newCartFixture(t)

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(&domain.Cart{ID: 1}, nil)

	_, err := f.svc.SetTeamSize(context.Background(), testCreds(), f.sess, 999, 3, nil)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestCartService_RemoveParticipant(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.cart.EXPECT().DeleteParticipant(mock.Anything, mock.Anything, int64(202)).Return(nil)
	f.cart.EXPECT().UpdateItemCount(mock.Anything, mock.Anything, int64(100), 2).Return(nil)

	err := f.svc.RemoveParticipant(context.Background(), testCreds(), f.sess, 100, 202)
	require.NoError(t, err)
}

func TestCartService_RemoveParticipant_BelowLowerBound(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 3, Upper: 6})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)

	err := f.svc.RemoveParticipant(context.Background(), testCreds(), f.sess, 100, 202)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartService_RemoveParticipant_LockedConstraint(t *testing.T) {
	f := newCartFixture(t)
	f.sess.CacheConstraint(10, domain.Constraint{Kind: domain.ConstraintFixedMultiple, Size: 3})

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)

	err := f.svc.RemoveParticipant(context.Background(), testCreds(), f.sess, 100, 202)
	assert.ErrorIs(t, err, domain.ErrCountLocked)
}

func TestCartService_ChangeSlot(t *testing.T) {
	f := newCartFixture(t)

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(31)).
		Return(openSlot(31, 5), nil)
	f.cart.EXPECT().UpdateTimeslot(mock.Anything, mock.Anything, int64(301), int64(100), int64(31)).
		Return(nil)

	err := f.svc.ChangeSlot(context.Background(), testCreds(), 100, 31)
	require.NoError(t, err)
}

func TestCartService_ChangeSlot_CapacityGate(t *testing.T) {
	f := newCartFixture(t)

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(31)).
		Return(openSlot(31, 2), nil)

	err := f.svc.ChangeSlot(context.Background(), testCreds(), 100, 31)
	assert.ErrorIs(t, err, domain.ErrSlotCapacity)
}

func TestCartService_ChangeSlot_UnlimitedAlwaysFits(t *testing.T) {
	f := newCartFixture(t)

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.slots.EXPECT().GetByID(mock.Anything, mock.Anything, int64(31)).
		Return(&domain.EventSlot{ID: 31, UnlimitedParticipants: true}, nil)
	f.cart.EXPECT().UpdateTimeslot(mock.Anything, mock.Anything, int64(301), int64(100), int64(31)).
		Return(nil)

	err := f.svc.ChangeSlot(context.Background(), testCreds(), 100, 31)
	require.NoError(t, err)
}

func TestCartService_Checkout(t *testing.T) {
	f := newCartFixture(t)
	booking := &domain.Booking{ID: 900, Status: "pending", TotalAmount: 120}

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(rangeItem(3), nil)
	f.cart.EXPECT().PlaceBooking(mock.Anything, mock.Anything).Return(booking, nil)

	notified := make(chan struct{})
	f.notifier.EXPECT().NotifyBookingPlaced(mock.Anything, booking).
		Run(func(ctx context.Context, b *domain.Booking) {
			close(notified)
		})

	got, err := f.svc.Checkout(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.ID)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	f := newCartFixture(t)

	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(&domain.Cart{ID: 1}, nil)

	_, err := f.svc.Checkout(context.Background(), testCreds())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartService_Checkout_InconsistentItemBlocks(t *testing.T) {
	f := newCartFixture(t)

	cart := rangeItem(3)
	// count says 3 but only 2 participants survived
	cart.Items[0].TempParticipants = cart.Items[0].TempParticipants[:2]
	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(cart, nil)

	_, err := f.svc.Checkout(context.Background(), testCreds())
	assert.ErrorIs(t, err, domain.ErrCartInconsistent)
}

func TestCartService_Checkout_MissingSlotBlocks(t *testing.T) {
	f := newCartFixture(t)

	cart := rangeItem(3)
	cart.Items[0].TempTimeslot = nil
	f.cart.EXPECT().GetCart(mock.Anything, mock.Anything).Return(cart, nil)

	_, err := f.svc.Checkout(context.Background(), testCreds())
	assert.ErrorIs(t, err, domain.ErrValidation)
}
