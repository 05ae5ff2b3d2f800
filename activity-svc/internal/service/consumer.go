package service

import (
	"context"
	"encoding/json"
	"log"

	"foodiefind/activity-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads mutation events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Activity Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.MutationEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessMutation(msg)
	}
}

func (c *Consumer) ProcessMutation(msg domain.MutationEvent) {
	var err error
	switch msg.Type {
	case domain.TypeLikeAdded:
		err = c.Store.AdjustDishLikes(msg.EntityID, msg.RestaurantID, 1)
	case domain.TypeLikeRemoved:
		err = c.Store.AdjustDishLikes(msg.EntityID, msg.RestaurantID, -1)
	case domain.TypeBookingCreated:
		err = c.Store.RecordBooking(msg.RestaurantID, msg.At)
	default:
		return
	}

	if err != nil {
		log.Printf("Error processing %s for entity %d: %v", msg.Type, msg.EntityID, err)
		return
	}
	log.Printf("Processed %s for entity %d", msg.Type, msg.EntityID)
}
