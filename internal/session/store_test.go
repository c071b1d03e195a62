package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifyevents/cartgate/internal/domain"
)

func TestStore_CreateAndGet(t *testing.T) {
	st := NewStore(time.Minute)

	s := st.Create()
	require.NotEmpty(t, s.ID)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestStore_GetOrCreate(t *testing.T) {
	st := NewStore(time.Minute)

	s := st.GetOrCreate("")
	require.NotNil(t, s)

	same := st.GetOrCreate(s.ID)
	assert.Same(t, s, same)

	fresh := st.GetOrCreate("expired-or-bogus")
	assert.NotEqual(t, s.ID, fresh.ID)
	assert.Equal(t, 2, st.Len())
}

func TestStore_SweepExpired(t *testing.T) {
	st := NewStore(10 * time.Millisecond)

	stale := st.Create()
	stale.touch(time.Now().Add(-time.Second))
	st.Create() // fresh

	removed := st.SweepExpired(context.Background())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, st.Len())

	_, ok := st.Get(stale.ID)
	assert.False(t, ok)
}

func TestStore_GetExpiresIdleSession(t *testing.T) {
	st := NewStore(10 * time.Millisecond)

	stale := st.Create()
	stale.touch(time.Now().Add(-time.Second))

	_, ok := st.Get(stale.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())

	// a stale id hands out a fresh session, not the expired one
	fresh := st.GetOrCreate(stale.ID)
	assert.NotEqual(t, stale.ID, fresh.ID)
}

func TestSession_ConstraintCache(t *testing.T) {
	st := NewStore(time.Minute)
	s := st.Create()

	_, ok := s.Constraint(7)
	require.False(t, ok)

	c := domain.Constraint{Kind: domain.ConstraintRangeMultiple, Lower: 2, Upper: 6}
	s.CacheConstraint(7, c)

	got, ok := s.Constraint(7)
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestSession_UnknownNotCached(t *testing.T) {
	st := NewStore(time.Minute)
	s := st.Create()

	s.CacheConstraint(7, domain.UnknownConstraint())

	_, ok := s.Constraint(7)
	assert.False(t, ok)
}

func TestSession_FlowLifecycle(t *testing.T) {
	st := NewStore(time.Minute)
	s := st.Create()

	require.Nil(t, s.Flow())

	f := &Flow{EventID: 1, Stage: StageChooseCount}
	s.SetFlow(f)
	assert.Same(t, f, s.Flow())

	s.ClearFlow()
	assert.Nil(t, s.Flow())
}
