package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/handler/dto"
	"github.com/unifyevents/cartgate/internal/service"
	"github.com/unifyevents/cartgate/internal/session"
)

// SessionHeader carries the gateway session id. The handler echoes it on
// every response so the client can persist a freshly created session.
const SessionHeader = "X-Cart-Session"

type EventSvc interface {
	List(ctx context.Context, creds *domain.Credentials) ([]domain.Event, error)
	ListSlots(ctx context.Context, creds *domain.Credentials, eventID int64, participants int) ([]service.SlotOption, error)
}

type FlowSvc interface {
	Start(ctx context.Context, creds *domain.Credentials, sess *session.Session, event domain.Event) (*service.FlowStatus, error)
	ChooseCount(sess *session.Session, count int) (*service.FlowStatus, error)
	AddParticipant(sess *session.Session, d domain.ParticipantDraft) (*service.FlowStatus, error)
	Back(sess *session.Session) (*service.FlowStatus, error)
	Slots(ctx context.Context, creds *domain.Credentials, sess *session.Session) ([]service.SlotOption, error)
	PickSlot(ctx context.Context, creds *domain.Credentials, sess *session.Session, slotID int64) (*domain.CartItem, error)
	Abandon(sess *session.Session)
}

type CartSvc interface {
	View(ctx context.Context, creds *domain.Credentials) (*domain.Cart, error)
	SetTeamSize(ctx context.Context, creds *domain.Credentials, sess *session.Session, itemID int64, target int, extras []domain.ParticipantDraft) (*service.TeamSizeResult, error)
	RemoveParticipant(ctx context.Context, creds *domain.Credentials, sess *session.Session, itemID, participantID int64) error
	UpdateParticipant(ctx context.Context, creds *domain.Credentials, itemID, participantID int64, d domain.ParticipantDraft) error
	ChangeSlot(ctx context.Context, creds *domain.Credentials, itemID, slotID int64) error
	RemoveItem(ctx context.Context, creds *domain.Credentials, itemID int64) error
	Checkout(ctx context.Context, creds *domain.Credentials) (*domain.Booking, error)
}

type Handler struct {
	eventService EventSvc
	flowService  FlowSvc
	cartService  CartSvc
	sessions     *session.Store
}

func NewHandler(eventService EventSvc, flowService FlowSvc, cartService CartSvc, sessions *session.Store) *Handler {
	return &Handler{
		eventService: eventService,
		flowService:  flowService,
		cartService:  cartService,
		sessions:     sessions,
	}
}

func (h *Handler) session(c *ginext.Context) *session.Session {
	sess := h.sessions.GetOrCreate(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, sess.ID)
	return sess
}

// credentials collects the caller's upstream cookies for forwarding.
func credentials(c *ginext.Context) *domain.Credentials {
	return &domain.Credentials{Cookies: c.Request.Cookies()}
}

// propagateCookies relays cookies refreshed mid-request back to the caller.
func propagateCookies(c *ginext.Context, creds *domain.Credentials) {
	for _, ck := range creds.SetCookies {
		http.SetCookie(c.Writer, ck)
	}
}

func paramID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	creds := credentials(c)

	events, err := h.eventService.List(c.Request.Context(), creds)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListEventSlots(c *ginext.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	participants := 1
	if raw := c.Query("participants"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid participants"})
			return
		}
		participants = n
	}

	creds := credentials(c)
	options, err := h.eventService.ListSlots(c.Request.Context(), creds, eventID, participants)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, toSlotResponses(options))
}

// Add-to-cart flow

func (h *Handler) StartFlow(c *ginext.Context) {
	var req dto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess := h.session(c)
	creds := credentials(c)

	st, err := h.flowService.Start(c.Request.Context(), creds, sess, domain.Event{
		ID:           req.EventID,
		Name:         req.EventName,
		ConstraintID: req.ConstraintID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusCreated, dto.ToFlowStatusResponse(st))
}

func (h *Handler) ChooseCount(c *ginext.Context) {
	var req dto.ChooseCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	st, err := h.flowService.ChooseCount(h.session(c), req.Count)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowStatusResponse(st))
}

func (h *Handler) AddFlowParticipant(c *ginext.Context) {
	var req dto.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	st, err := h.flowService.AddParticipant(h.session(c), req.ToDraft())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowStatusResponse(st))
}

func (h *Handler) FlowBack(c *ginext.Context) {
	st, err := h.flowService.Back(h.session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowStatusResponse(st))
}

func (h *Handler) FlowSlots(c *ginext.Context) {
	sess := h.session(c)
	creds := credentials(c)

	options, err := h.flowService.Slots(c.Request.Context(), creds, sess)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, toSlotResponses(options))
}

func (h *Handler) PickFlowSlot(c *ginext.Context) {
	var req dto.PickSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sess := h.session(c)
	creds := credentials(c)

	item, err := h.flowService.PickSlot(c.Request.Context(), creds, sess, req.SlotID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusCreated, dto.ToCartItemResponse(item))
}

func (h *Handler) AbandonFlow(c *ginext.Context) {
	h.flowService.Abandon(h.session(c))
	c.JSON(http.StatusOK, ginext.H{"status": "abandoned"})
}

// Cart

func (h *Handler) GetCart(c *ginext.Context) {
	h.session(c)
	creds := credentials(c)

	cart, err := h.cartService.View(c.Request.Context(), creds)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

func (h *Handler) SetTeamSize(c *ginext.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.TeamSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	extras := make([]domain.ParticipantDraft, 0, len(req.NewParticipants))
	for _, p := range req.NewParticipants {
		extras = append(extras, p.ToDraft())
	}

	sess := h.session(c)
	creds := credentials(c)

	res, err := h.cartService.SetTeamSize(c.Request.Context(), creds, sess, itemID, req.Count, extras)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, dto.TeamSizeResponse{
		Count:              res.Count,
		SlotRepickRequired: res.SlotRepickRequired,
	})
}

func (h *Handler) UpdateCartParticipant(c *ginext.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}
	participantID, ok := paramID(c, "pid")
	if !ok {
		return
	}

	var req dto.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	creds := credentials(c)
	if err := h.cartService.UpdateParticipant(c.Request.Context(), creds, itemID, participantID, req.ToDraft()); err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) RemoveCartParticipant(c *ginext.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}
	participantID, ok := paramID(c, "pid")
	if !ok {
		return
	}

	sess := h.session(c)
	creds := credentials(c)

	if err := h.cartService.RemoveParticipant(c.Request.Context(), creds, sess, itemID, participantID); err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

func (h *Handler) ChangeItemSlot(c *ginext.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	creds := credentials(c)
	if err := h.cartService.ChangeSlot(c.Request.Context(), creds, itemID, req.SlotID); err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) RemoveCartItem(c *ginext.Context) {
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	creds := credentials(c)
	if err := h.cartService.RemoveItem(c.Request.Context(), creds, itemID); err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusOK, ginext.H{"status": "removed"})
}

func (h *Handler) Checkout(c *ginext.Context) {
	creds := credentials(c)

	booking, err := h.cartService.Checkout(c.Request.Context(), creds)
	if err != nil {
		h.handleError(c, err)
		return
	}
	propagateCookies(c, creds)

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func toSlotResponses(options []service.SlotOption) []dto.SlotResponse {
	resp := make([]dto.SlotResponse, 0, len(options))
	for _, o := range options {
		resp = append(resp, dto.ToSlotResponse(o))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrConstraintNotFound),
		errors.Is(err, domain.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotCapacity),
		errors.Is(err, domain.ErrCountLocked),
		errors.Is(err, domain.ErrCartInconsistent),
		errors.Is(err, domain.ErrConstraintUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrFlowState):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
