package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Restaurant struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	MenuItems   []MenuItem `json:"menu_items,omitempty"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"is_active"`
}

type Order struct {
	ID           int             `json:"id"`
	UserID       int             `json:"user_id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       string          `json:"status"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
	Lines        []OrderLine     `json:"items"`
}

// OrderLine is a receipt snapshot: name and unit price are copied from the
// menu item at purchase time and never change afterwards.
type OrderLine struct {
	ID           int             `json:"id"`
	OrderID      int             `json:"order_id"`
	MenuItemID   int             `json:"menu_item_id"`
	ItemName     string          `json:"item_name"`
	PriceAtOrder decimal.Decimal `json:"price_at_order"`
	Quantity     int             `json:"quantity"`
}
