package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service/ports"
	"github.com/unifyevents/cartgate/internal/session"
)

// CartService reconciles the remote cart with the user's intended change.
// Every mutation is a short saga of sequential upstream calls with explicit
// compensation, so a mid-sequence failure never leaves an item whose
// participants_count disagrees with its participant rows.
type CartService struct {
	cart     ports.CartGateway
	slots    ports.SlotGateway
	resolver *Resolver
	notifier ports.BookingNotifier
	log      logger.Logger
}

func NewCartService(
	cart ports.CartGateway,
	slots ports.SlotGateway,
	resolver *Resolver,
	notifier ports.BookingNotifier,
	log logger.Logger,
) *CartService {
	return &CartService{
		cart:     cart,
		slots:    slots,
		resolver: resolver,
		notifier: notifier,
		log:      log,
	}
}

func (s *CartService) View(ctx context.Context, creds *domain.Credentials) (*domain.Cart, error) {
	cart, err := s.cart.GetCart(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	for _, item := range cart.Items {
		if !item.Consistent() {
			s.log.Warn("cart item inconsistent",
				logger.Int64("cart_item_id", item.ID),
				logger.Int("participants_count", item.ParticipantsCount),
				logger.Int("temp_participants", len(item.TempParticipants)),
			)
		}
	}

	return cart, nil
}

type AddToCartInput struct {
	Event        domain.EventRef
	Count        int
	Participants []domain.ParticipantDraft
	SlotID       int64
}

// AddToCart runs the add saga: create item, create participants, bind slot.
// Any failure after item creation rolls back what was created.
func (s *CartService) AddToCart(ctx context.Context, creds *domain.Credentials, sess *session.Session, input AddToCartInput) (*domain.CartItem, error) {
	constraint, err := s.resolver.ResolveEffective(ctx, creds, sess, input.Event)
	if err != nil {
		return nil, err
	}
	if err := constraint.ValidateCount(input.Count); err != nil {
		return nil, err
	}
	if len(input.Participants) != input.Count {
		return nil, fmt.Errorf("%w: expected %d participants, got %d",
			domain.ErrValidation, input.Count, len(input.Participants))
	}
	for _, p := range input.Participants {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	slot, err := s.slots.GetByID(ctx, creds, input.SlotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if !slot.CanAccommodate(input.Count) {
		return nil, domain.ErrSlotCapacity
	}

	cart, err := s.cart.GetCart(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	item, err := s.cart.CreateItem(ctx, creds, domain.CreateItemInput{
		CartID:            cart.ID,
		EventID:           input.Event.ID,
		ParticipantsCount: input.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}

	var created []int64
	for _, p := range input.Participants {
		tp, err := s.cart.CreateParticipant(ctx, creds, item.ID, p)
		if err != nil {
			s.rollbackItem(ctx, creds, item.ID, created)
			return nil, fmt.Errorf("create participant: %w", err)
		}
		created = append(created, tp.ID)
		item.TempParticipants = append(item.TempParticipants, *tp)
	}

	ts, err := s.cart.CreateTimeslot(ctx, creds, item.ID, input.SlotID)
	if err != nil {
		s.rollbackItem(ctx, creds, item.ID, created)
		return nil, fmt.Errorf("bind slot: %w", err)
	}
	item.TempTimeslot = ts

	s.log.Info("event added to cart",
		logger.Int64("cart_item_id", item.ID),
		logger.Int64("event_id", input.Event.ID),
		logger.Int("participants", input.Count),
		logger.Int64("slot_id", input.SlotID),
	)

	return item, nil
}

// rollbackItem undoes a partially created cart item. Best effort: a failed
// delete is logged and left for the next full cart reload to surface.
func (s *CartService) rollbackItem(ctx context.Context, creds *domain.Credentials, itemID int64, participantIDs []int64) {
	ctx = context.WithoutCancel(ctx)

	for _, id := range participantIDs {
		if err := s.cart.DeleteParticipant(ctx, creds, id); err != nil {
			s.log.Error("rollback: delete participant failed",
				logger.Int64("participant_id", id),
				logger.String("error", err.Error()),
			)
		}
	}
	if err := s.cart.DeleteItem(ctx, creds, itemID); err != nil {
		s.log.Error("rollback: delete cart item failed",
			logger.Int64("cart_item_id", itemID),
			logger.String("error", err.Error()),
		)
	}
}

type TeamSizeResult struct {
	Count              int
	SlotRepickRequired bool
}

// SetTeamSize grows or shrinks a cart item's team. Growing creates the new
// participants and re-checks the bound slot against the larger team; if the
// slot no longer fits, the result demands a slot re-pick rather than
// overbooking. Shrinking removes the newest participants first.
func (s *CartService) SetTeamSize(ctx context.Context, creds *domain.Credentials, sess *session.Session, itemID int64, target int, extras []domain.ParticipantDraft) (*TeamSizeResult, error) {
	item, err := s.findItem(ctx, creds, itemID)
	if err != nil {
		return nil, err
	}

	constraint, err := s.resolver.ResolveEffective(ctx, creds, sess, domain.EventRef{ID: item.EventID})
	if err != nil {
		return nil, err
	}

	current := item.ParticipantsCount
	if target == current {
		return &TeamSizeResult{Count: current}, nil
	}
	if !constraint.CanEditCount() {
		return nil, domain.ErrCountLocked
	}
	if err := constraint.ValidateCount(target); err != nil {
		return nil, err
	}

	if target < current {
		return s.shrink(ctx, creds, item, target)
	}
	return s.grow(ctx, creds, item, target, extras)
}

func (s *CartService) shrink(ctx context.Context, creds *domain.Credentials, item *domain.CartItem, target int) (*TeamSizeResult, error) {
	delta := item.ParticipantsCount - target
	if len(item.TempParticipants) < delta {
		return nil, fmt.Errorf("item %d: %w", item.ID, domain.ErrCartInconsistent)
	}

	// newest entries go first
	toDelete := item.TempParticipants[len(item.TempParticipants)-delta:]
	deleted := 0
	for _, p := range toDelete {
		if err := s.cart.DeleteParticipant(ctx, creds, p.ID); err != nil {
			s.settleCount(ctx, creds, item.ID, item.ParticipantsCount-deleted)
			return nil, fmt.Errorf("delete participant: %w", err)
		}
		deleted++
	}

	if err := s.cart.UpdateItemCount(ctx, creds, item.ID, target); err != nil {
		return nil, fmt.Errorf("update count: %w", err)
	}

	s.log.Info("team size decreased",
		logger.Int64("cart_item_id", item.ID),
		logger.Int("count", target),
	)

	return &TeamSizeResult{Count: target}, nil
}

func (s *CartService) grow(ctx context.Context, creds *domain.Credentials, item *domain.CartItem, target int, extras []domain.ParticipantDraft) (*TeamSizeResult, error) {
	delta := target - item.ParticipantsCount
	if len(extras) != delta {
		return nil, fmt.Errorf("%w: expected %d new participants, got %d",
			domain.ErrValidation, delta, len(extras))
	}
	for _, p := range extras {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	if err := s.cart.UpdateItemCount(ctx, creds, item.ID, target); err != nil {
		return nil, fmt.Errorf("update count: %w", err)
	}

	var created []int64
	for _, p := range extras {
		tp, err := s.cart.CreateParticipant(ctx, creds, item.ID, p)
		if err != nil {
			s.rollbackGrow(ctx, creds, item.ID, item.ParticipantsCount, created)
			return nil, fmt.Errorf("create participant: %w", err)
		}
		created = append(created, tp.ID)
	}

	result := &TeamSizeResult{Count: target}

	// the bound slot may no longer fit the larger team; the resize itself
	// has committed by now, so a failed re-check reports success with a
	// repick prompt instead of an error the caller would misread as a
	// failed mutation
	if item.TempTimeslot != nil {
		slot, err := s.slots.GetByID(ctx, creds, item.TempTimeslot.SlotID)
		if err != nil {
			s.log.Warn("slot recheck failed after resize",
				logger.Int64("cart_item_id", item.ID),
				logger.Int64("slot_id", item.TempTimeslot.SlotID),
				logger.String("error", err.Error()),
			)
			result.SlotRepickRequired = true
			return result, nil
		}
		if !slot.CanAccommodate(target) {
			s.log.Warn("slot no longer fits team",
				logger.Int64("cart_item_id", item.ID),
				logger.Int64("slot_id", slot.ID),
				logger.Int("available", slot.AvailableParticipants),
				logger.Int("needed", target),
			)
			result.SlotRepickRequired = true
		}
	}

	s.log.Info("team size increased",
		logger.Int64("cart_item_id", item.ID),
		logger.Int("count", target),
	)

	return result, nil
}

// rollbackGrow deletes the extras created so far and restores the previous
// count so count and participants agree again.
func (s *CartService) rollbackGrow(ctx context.Context, creds *domain.Credentials, itemID int64, previousCount int, created []int64) {
	ctx = context.WithoutCancel(ctx)

	for _, id := range created {
		if err := s.cart.DeleteParticipant(ctx, creds, id); err != nil {
			s.log.Error("rollback: delete participant failed",
				logger.Int64("participant_id", id),
				logger.String("error", err.Error()),
			)
		}
	}
	s.settleCount(ctx, creds, itemID, previousCount)
}

func (s *CartService) settleCount(ctx context.Context, creds *domain.Credentials, itemID int64, count int) {
	if err := s.cart.UpdateItemCount(context.WithoutCancel(ctx), creds, itemID, count); err != nil {
		s.log.Error("rollback: restore count failed",
			logger.Int64("cart_item_id", itemID),
			logger.Int("count", count),
			logger.String("error", err.Error()),
		)
	}
}

// RemoveParticipant drops one team member, allowed only when the constraint
// leaves the count editable and the smaller team is still valid.
func (s *CartService) RemoveParticipant(ctx context.Context, creds *domain.Credentials, sess *session.Session, itemID, participantID int64) error {
	item, err := s.findItem(ctx, creds, itemID)
	if err != nil {
		return err
	}
	if !hasParticipant(item, participantID) {
		return domain.ErrParticipantNotFound
	}

	constraint, err := s.resolver.ResolveEffective(ctx, creds, sess, domain.EventRef{ID: item.EventID})
	if err != nil {
		return err
	}
	if !constraint.CanEditCount() {
		return domain.ErrCountLocked
	}
	if err := constraint.ValidateCount(item.ParticipantsCount - 1); err != nil {
		return err
	}

	if err := s.cart.DeleteParticipant(ctx, creds, participantID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if err := s.cart.UpdateItemCount(ctx, creds, item.ID, item.ParticipantsCount-1); err != nil {
		return fmt.Errorf("update count: %w", err)
	}

	return nil
}

// UpdateParticipant saves edited details of one team member in place.
func (s *CartService) UpdateParticipant(ctx context.Context, creds *domain.Credentials, itemID, participantID int64, d domain.ParticipantDraft) error {
	if err := d.Validate(); err != nil {
		return err
	}

	item, err := s.findItem(ctx, creds, itemID)
	if err != nil {
		return err
	}
	if !hasParticipant(item, participantID) {
		return domain.ErrParticipantNotFound
	}

	return s.cart.UpdateParticipant(ctx, creds, participantID, d)
}

// ChangeSlot re-binds a cart item to another slot, gated by capacity. The
// existing temp timeslot is updated in place, never duplicated.
func (s *CartService) ChangeSlot(ctx context.Context, creds *domain.Credentials, itemID, slotID int64) error {
	item, err := s.findItem(ctx, creds, itemID)
	if err != nil {
		return err
	}

	slot, err := s.slots.GetByID(ctx, creds, slotID)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}
	if !slot.CanAccommodate(item.ParticipantsCount) {
		return domain.ErrSlotCapacity
	}

	if item.TempTimeslot != nil {
		if err := s.cart.UpdateTimeslot(ctx, creds, item.TempTimeslot.ID, item.ID, slotID); err != nil {
			return fmt.Errorf("update timeslot: %w", err)
		}
		return nil
	}

	if _, err := s.cart.CreateTimeslot(ctx, creds, item.ID, slotID); err != nil {
		return fmt.Errorf("create timeslot: %w", err)
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, creds *domain.Credentials, itemID int64) error {
	if err := s.cart.DeleteItem(ctx, creds, itemID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	s.log.Info("cart item removed", logger.Int64("cart_item_id", itemID))
	return nil
}

// Checkout verifies every item is consistent and has a slot bound, then
// places the booking upstream.
func (s *CartService) Checkout(ctx context.Context, creds *domain.Credentials) (*domain.Booking, error) {
	cart, err := s.cart.GetCart(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrValidation)
	}

	for _, item := range cart.Items {
		if !item.Consistent() {
			return nil, fmt.Errorf("item %d (%s): %w", item.ID, item.EventName, domain.ErrCartInconsistent)
		}
		if item.TempTimeslot == nil {
			return nil, fmt.Errorf("%w: no slot selected for %q", domain.ErrValidation, item.EventName)
		}
	}

	booking, err := s.cart.PlaceBooking(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("place booking: %w", err)
	}

	s.log.Info("booking placed",
		logger.Int64("booking_id", booking.ID),
		logger.Int("items", len(cart.Items)),
	)

	go s.notifier.NotifyBookingPlaced(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *CartService) findItem(ctx context.Context, creds *domain.Credentials, itemID int64) (*domain.CartItem, error) {
	cart, err := s.cart.GetCart(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return &cart.Items[i], nil
		}
	}
	return nil, domain.ErrCartItemNotFound
}

func hasParticipant(item *domain.CartItem, participantID int64) bool {
	for _, p := range item.TempParticipants {
		if p.ID == participantID {
			return true
		}
	}
	return false
}
