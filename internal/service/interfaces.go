package service

import (
	"context"

	"zomighty/internal/domain"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByUsername(username string) (*domain.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}

type CatalogRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants(page, perPage int, search string) ([]domain.Restaurant, int, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetRestaurantWithMenu(id int) (*domain.Restaurant, error)
	DeleteRestaurantCascade(id int) (int64, error)
	CreateMenuItem(item *domain.MenuItem) error
	GetMenuItem(id int) (*domain.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListUserOrders(userID int) ([]domain.Order, error)
	UpdateOrderStatus(orderID int, status string) (*domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type CatalogCache interface {
	RestaurantKey(id int) string
	GetRestaurant(ctx context.Context, key string) (*domain.Restaurant, error)
	SetRestaurant(ctx context.Context, key string, rest *domain.Restaurant) error
	Invalidate(ctx context.Context, key string) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type AuthServiceInterface interface {
	Register(req *domain.RegisterRequest) error
	Login(req *domain.LoginRequest) (string, error)
}

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(page, perPage int, search string) (*domain.RestaurantPage, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int) error
	AddMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, userID int, req *domain.PlaceOrderRequest) (*domain.Order, error)
	ListUserOrders(userID int) ([]domain.OrderView, error)
	UpdateStatus(orderID int, status string) (*domain.Order, error)
	GetQRCode(orderID int) ([]byte, error)
}
