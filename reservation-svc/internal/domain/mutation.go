package domain

import "time"

type MutationType string

const (
	RestaurantUpdated MutationType = "restaurant_updated"
	MenuItemAdded     MutationType = "menu_item_added"
	MenuItemUpdated   MutationType = "menu_item_updated"
	MenuItemDeleted   MutationType = "menu_item_deleted"
	BookingCreated    MutationType = "booking_created"
	BookingUpdated    MutationType = "booking_updated"
	BookingDeleted    MutationType = "booking_deleted"
	LikeAdded         MutationType = "like_added"
	LikeRemoved       MutationType = "like_removed"
	UserAdded         MutationType = "user_added"
	StoreReplaced     MutationType = "store_replaced"
)

type Collection string

const (
	CollectionRestaurants Collection = "restaurants"
	CollectionBookings    Collection = "bookings"
	CollectionLikedItems  Collection = "liked_items"
	CollectionUsers       Collection = "users"
	CollectionAll         Collection = "all"
)

// Mutation is emitted by the store after every successful write.
type Mutation struct {
	ID           string       `json:"id"`
	Type         MutationType `json:"type"`
	Collection   Collection   `json:"collection"`
	EntityID     int64        `json:"entity_id"`
	RestaurantID int          `json:"restaurant_id,omitempty"`
	At           time.Time    `json:"at"`
}
