package domain

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PlaceOrderRequest is the body of POST /api/orders.
type PlaceOrderRequest struct {
	RestaurantID int                `json:"restaurant_id"`
	Items        []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// OrderView is one element of the GET /api/orders listing. Prices are
// rendered as fixed two-decimal strings, matching the stored NUMERIC scale.
type OrderView struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Status       string          `json:"status"`
	TotalPrice   string          `json:"total_price"`
	Date         string          `json:"date"`
	Items        []OrderLineView `json:"items"`
}

type OrderLineView struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// RestaurantPage wraps a restaurant listing with pagination metadata.
type RestaurantPage struct {
	Restaurants []Restaurant `json:"restaurants"`
	Meta        PageMeta     `json:"meta"`
}

type PageMeta struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
	TotalItems int    `json:"total_items"`
	SearchTerm string `json:"search_term"`
}
