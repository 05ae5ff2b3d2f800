package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodiefind/activity-svc/internal/domain"
	"foodiefind/activity-svc/internal/mocks"
	"foodiefind/activity-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumer_ProcessMutation(t *testing.T) {
	at := time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		inputMessage   domain.MutationEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:         "like added",
			inputMessage: domain.MutationEvent{Type: domain.TypeLikeAdded, EntityID: 101, RestaurantID: 1},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("AdjustDishLikes", int64(101), 1, float64(1)).Return(nil)
			},
		},
		{
			name:         "like removed",
			inputMessage: domain.MutationEvent{Type: domain.TypeLikeRemoved, EntityID: 101, RestaurantID: 1},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("AdjustDishLikes", int64(101), 1, float64(-1)).Return(nil)
			},
		},
		{
			name:         "booking created",
			inputMessage: domain.MutationEvent{Type: domain.TypeBookingCreated, EntityID: 2, RestaurantID: 3, At: at},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordBooking", 3, at).Return(nil)
			},
		},
		{
			name:         "store error is logged",
			inputMessage: domain.MutationEvent{Type: domain.TypeLikeAdded, EntityID: 7},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("AdjustDishLikes", int64(7), 0, float64(1)).Return(errors.New("redis error"))
			},
		},
		{
			name:           "ignored type",
			inputMessage:   domain.MutationEvent{Type: "user_added", EntityID: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessMutation(testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.MutationEvent{Type: domain.TypeLikeAdded, EntityID: 5, RestaurantID: 2})
	require.NoError(t, err)

	mockReader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)

	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	mockStore.On("AdjustDishLikes", int64(5), 2, float64(1)).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(mockReader, mockStore).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}
