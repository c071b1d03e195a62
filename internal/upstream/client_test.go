package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/unifyevents/cartgate/internal/config"
	"github.com/unifyevents/cartgate/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, api, auth string) *Client {
	t.Helper()
	return NewClient(config.UpstreamConfig{
		BaseURL:       api,
		AuthBaseURL:   auth,
		Timeout:       2 * time.Second,
		RetryAttempts: 1,
		RetryDelay:    10 * time.Millisecond,
	}, newTestLogger(t))
}

func creds() *domain.Credentials {
	return &domain.Credentials{
		Cookies: []*http.Cookie{{Name: "sessionid", Value: "abc"}},
	}
}

func TestConstraintGateway_GetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/constraints/5/", r.URL.Path)
		cookie, err := r.Cookie("sessionid")
		require.NoError(t, err)
		assert.Equal(t, "abc", cookie.Value)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id": 5, "event": 1, "booking_type": "multiple",
			"fixed": false, "lower_limit": 2, "upper_limit": 6,
		})
	}))
	defer srv.Close()

	g := NewConstraintGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	c, err := g.GetByID(context.Background(), creds(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6}, c)
}

func TestConstraintGateway_GetByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewConstraintGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	_, err := g.GetByID(context.Background(), creds(), 5)
	assert.ErrorIs(t, err, domain.ErrConstraintNotFound)
}

func TestConstraintGateway_FindByEvent_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("event"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	g := NewConstraintGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	c, found, err := g.FindByEvent(context.Background(), creds(), 7)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.ConstraintSingle, c.Kind)
}

func TestClient_RefreshesOnceOn401(t *testing.T) {
	var apiCalls, refreshCalls atomic.Int32

	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/refresh/", r.URL.Path)
		refreshCalls.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "fresh"})
	}))
	defer auth.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := apiCalls.Add(1)
		cookie, err := r.Cookie("sessionid")
		require.NoError(t, err)
		if n == 1 {
			assert.Equal(t, "abc", cookie.Value)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "fresh", cookie.Value)
		w.Write([]byte("[]"))
	}))
	defer api.Close()

	g := NewSlotGateway(newTestClient(t, api.URL, auth.URL))

	cr := creds()
	_, err := g.ListByEvent(context.Background(), cr, 1)
	require.NoError(t, err)

	assert.Equal(t, int32(2), apiCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())

	// refreshed cookie replaced in place and recorded for the caller
	require.Len(t, cr.Cookies, 1)
	assert.Equal(t, "fresh", cr.Cookies[0].Value)
	require.Len(t, cr.SetCookies, 1)
}

func TestClient_RefreshFailureSurfaces401(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer auth.Close()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer api.Close()

	g := NewSlotGateway(newTestClient(t, api.URL, auth.URL))

	_, err := g.ListByEvent(context.Background(), creds(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusUnauthorized, ue.Status)
}

func TestClient_GetRetriedOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	g := NewSlotGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	_, err := g.ListByEvent(context.Background(), creds(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MutationsNeverRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewCartGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	err := g.UpdateItemCount(context.Background(), creds(), 1, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCartGateway_GetCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id": 9,
			"items": []map[string]any{{
				"id": 11, "cart": 9, "event": 3,
				"event_name": "Hackathon", "event_price": 250.0,
				"participants_count": 2,
				"temp_participants": []map[string]any{
					{"id": 21, "cart_item": 11, "name": "Alice", "email": "a@x.io", "phone_number": nil},
					{"id": 22, "cart_item": 11, "name": "Bob", "email": nil, "phone_number": nil},
				},
				"temp_timeslot": map[string]any{"id": 31, "cart_item": 11, "slot": 41},
			}},
		})
	}))
	defer srv.Close()

	g := NewCartGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	cart, err := g.GetCart(context.Background(), creds())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, "Hackathon", item.EventName)
	assert.True(t, item.Consistent())
	assert.Equal(t, 500.0, item.LineTotal())
	assert.Equal(t, "a@x.io", item.TempParticipants[0].Email)
	assert.Equal(t, "", item.TempParticipants[1].Email)
	require.NotNil(t, item.TempTimeslot)
	assert.Equal(t, int64(41), item.TempTimeslot.SlotID)
}

func TestCartGateway_CreateItem_EventNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewCartGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	_, err := g.CreateItem(context.Background(), creds(), domain.CreateItemInput{
		CartID: 9, EventID: 404, ParticipantsCount: 2,
	})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCartGateway_CreateParticipant_OptionalFieldsNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice", body["name"])
		assert.Nil(t, body["email"])
		assert.Nil(t, body["phone_number"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": 21, "cart_item": 11, "name": "Alice"})
	}))
	defer srv.Close()

	g := NewCartGateway(newTestClient(t, srv.URL, srv.URL+"/auth"))

	p, err := g.CreateParticipant(context.Background(), creds(), 11, domain.ParticipantDraft{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), p.ID)
}
