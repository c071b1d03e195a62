package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service/ports"
	"github.com/unifyevents/cartgate/internal/session"
)

// FlowService walks a session through the add-to-cart sequence the way the
// source modal flow did: resolve constraint, pick a count when the range is
// open, collect participants one by one, pick a slot. Nothing touches the
// upstream cart until the final step, so abandoning mid-flow is free.
type FlowService struct {
	resolver *Resolver
	slots    ports.SlotGateway
	cart     *CartService
	log      logger.Logger
}

func NewFlowService(resolver *Resolver, slots ports.SlotGateway, cart *CartService, log logger.Logger) *FlowService {
	return &FlowService{
		resolver: resolver,
		slots:    slots,
		cart:     cart,
		log:      log,
	}
}

// FlowStatus tells the client what the flow needs next.
type FlowStatus struct {
	Stage            session.FlowStage
	EventID          int64
	EventName        string
	Constraint       domain.Constraint
	Count            int
	ParticipantIndex int
	ParticipantTotal int
	Current          domain.ParticipantDraft
}

func statusOf(f *session.Flow) *FlowStatus {
	st := &FlowStatus{
		Stage:      f.Stage,
		EventID:    f.EventID,
		EventName:  f.EventName,
		Constraint: f.Constraint,
		Count:      f.Count,
	}
	if f.Collector != nil {
		st.ParticipantIndex = f.Collector.Index()
		st.ParticipantTotal = f.Collector.Target()
		st.Current = f.Collector.Current()
	}
	return st
}

// Start begins a flow for an event, replacing any previous one (which made
// no upstream writes). Single and fixed constraints skip straight to
// participant collection at their locked count.
func (s *FlowService) Start(ctx context.Context, creds *domain.Credentials, sess *session.Session, event domain.Event) (*FlowStatus, error) {
	constraint, err := s.resolver.ResolveEffective(ctx, creds, sess, domain.EventRef{ID: event.ID, ConstraintID: event.ConstraintID})
	if err != nil {
		return nil, err
	}

	f := &session.Flow{
		EventID:    event.ID,
		EventName:  event.Name,
		Constraint: constraint,
	}

	if constraint.NeedsCountChoice() {
		f.Stage = session.StageChooseCount
	} else {
		f.Count = constraint.DefaultCount()
		collector, err := domain.NewCollector(f.Count)
		if err != nil {
			return nil, err
		}
		f.Collector = collector
		f.Stage = session.StageCollectParticipants
	}

	sess.SetFlow(f)

	s.log.Info("add-to-cart flow started",
		logger.String("session_id", sess.ID),
		logger.Int64("event_id", event.ID),
		logger.String("stage", string(f.Stage)),
	)

	return statusOf(f), nil
}

func (s *FlowService) ChooseCount(sess *session.Session, count int) (*FlowStatus, error) {
	f := sess.Flow()
	if f == nil {
		return nil, domain.ErrFlowNotFound
	}
	if f.Stage != session.StageChooseCount {
		return nil, domain.ErrFlowState
	}
	if err := f.Constraint.ValidateCount(count); err != nil {
		return nil, err
	}

	collector, err := domain.NewCollector(count)
	if err != nil {
		return nil, err
	}

	f.Count = count
	f.Collector = collector
	f.Stage = session.StageCollectParticipants

	return statusOf(f), nil
}

// AddParticipant records one team member's details and advances; after the
// last one the flow moves on to slot picking.
func (s *FlowService) AddParticipant(sess *session.Session, d domain.ParticipantDraft) (*FlowStatus, error) {
	f := sess.Flow()
	if f == nil {
		return nil, domain.ErrFlowNotFound
	}
	if f.Stage != session.StageCollectParticipants {
		return nil, domain.ErrFlowState
	}

	if err := f.Collector.Next(d); err != nil {
		return nil, err
	}
	if f.Collector.Done() {
		f.Stage = session.StagePickSlot
	}

	return statusOf(f), nil
}

// Back revisits the previous participant, reopening collection from the slot
// stage if needed. Entered data is preserved.
func (s *FlowService) Back(sess *session.Session) (*FlowStatus, error) {
	f := sess.Flow()
	if f == nil {
		return nil, domain.ErrFlowNotFound
	}

	switch f.Stage {
	case session.StageCollectParticipants:
		if err := f.Collector.Back(); err != nil {
			return nil, err
		}
	case session.StagePickSlot:
		if err := f.Collector.Back(); err != nil {
			return nil, err
		}
		f.Stage = session.StageCollectParticipants
	default:
		return nil, domain.ErrFlowState
	}

	return statusOf(f), nil
}

// SlotOption is a slot annotated with whether the flow's team fits it.
type SlotOption struct {
	domain.EventSlot
	CanFit bool
}

func (s *FlowService) Slots(ctx context.Context, creds *domain.Credentials, sess *session.Session) ([]SlotOption, error) {
	f := sess.Flow()
	if f == nil {
		return nil, domain.ErrFlowNotFound
	}
	if f.Stage != session.StagePickSlot {
		return nil, domain.ErrFlowState
	}

	slots, err := s.slots.ListByEvent(ctx, creds, f.EventID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	options := make([]SlotOption, 0, len(slots))
	for _, slot := range slots {
		options = append(options, SlotOption{EventSlot: slot, CanFit: slot.CanAccommodate(f.Count)})
	}
	return options, nil
}

// PickSlot commits the flow through the cart saga and clears it on success.
func (s *FlowService) PickSlot(ctx context.Context, creds *domain.Credentials, sess *session.Session, slotID int64) (*domain.CartItem, error) {
	f := sess.Flow()
	if f == nil {
		return nil, domain.ErrFlowNotFound
	}
	if f.Stage != session.StagePickSlot {
		return nil, domain.ErrFlowState
	}

	participants, err := f.Collector.Participants()
	if err != nil {
		return nil, err
	}

	item, err := s.cart.AddToCart(ctx, creds, sess, AddToCartInput{
		Event:        domain.EventRef{ID: f.EventID},
		Count:        f.Count,
		Participants: participants,
		SlotID:       slotID,
	})
	if err != nil {
		return nil, err
	}

	sess.ClearFlow()

	return item, nil
}

// Abandon drops the flow; no upstream calls were made before commit, so the
// cancellation is always consistent.
func (s *FlowService) Abandon(sess *session.Session) {
	sess.ClearFlow()
}
