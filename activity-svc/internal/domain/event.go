package domain

import "time"

const (
	TypeLikeAdded      = "like_added"
	TypeLikeRemoved    = "like_removed"
	TypeBookingCreated = "booking_created"
	TypeBookingUpdated = "booking_updated"
	TypeBookingDeleted = "booking_deleted"
)

// MutationEvent is the message published on the store-mutations topic.
type MutationEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Collection   string    `json:"collection"`
	EntityID     int64     `json:"entity_id"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	At           time.Time `json:"at"`
}
