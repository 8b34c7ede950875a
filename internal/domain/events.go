package domain

import "time"

// OrderPlacedEvent is published to Kafka after an order commits. It feeds
// downstream analytics and is never part of the client-facing contract.
type OrderPlacedEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id"`
	TotalPrice   string    `json:"total_price"`
	Timestamp    time.Time `json:"timestamp"`
}
