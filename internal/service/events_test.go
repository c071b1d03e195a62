package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unifyevents/cartgate/internal/domain"
	"github.com/unifyevents/cartgate/internal/service/ports/mocks"
)

func TestEventService_ListSlots_AnnotatesFit(t *testing.T) {
	slots := mocks.NewMockSlotGateway(t)
	svc := NewEventService(mocks.NewMockEventGateway(t), slots)

	slots.EXPECT().ListByEvent(mock.Anything, mock.Anything, int64(10)).
		Return([]domain.EventSlot{
			{ID: 30, AvailableParticipants: 4},
			{ID: 31, AvailableParticipants: 2},
		}, nil)

	options, err := svc.ListSlots(context.Background(), testCreds(), 10, 3)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.True(t, options[0].CanFit)
	assert.False(t, options[1].CanFit)
}

func TestEventService_ListSlots_DefaultsToOneParticipant(t *testing.T) {
	slots := mocks.NewMockSlotGateway(t)
	svc := NewEventService(mocks.NewMockEventGateway(t), slots)

	slots.EXPECT().ListByEvent(mock.Anything, mock.Anything, int64(10)).
		Return([]domain.EventSlot{{ID: 30, AvailableParticipants: 1}}, nil)

	options, err := svc.ListSlots(context.Background(), testCreds(), 10, 0)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.True(t, options[0].CanFit)
}
