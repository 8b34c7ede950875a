package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"zomighty/internal/domain"
)

var validStatuses = map[string]bool{
	domain.StatusPending:   true,
	domain.StatusPreparing: true,
	domain.StatusDelivered: true,
	domain.StatusCancelled: true,
}

type OrderService struct {
	orders    OrderRepository
	catalog   CatalogRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
}

func NewOrderService(orders OrderRepository, catalog CatalogRepository, qr QRGenerator, publisher OrderPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		qrEncoder: qr,
		publisher: publisher,
	}
}

// PlaceOrder validates the request against the catalog, freezes current menu
// prices into order lines, and persists the header and lines in one
// transaction. Validation is fail-fast: the first bad item aborts the whole
// request and nothing is written.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int, req *domain.PlaceOrderRequest) (*domain.Order, error) {
	if req.RestaurantID <= 0 || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: missing restaurant_id or items", ErrValidation)
	}

	restaurant, err := s.catalog.GetRestaurant(req.RestaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %d: %w", req.RestaurantID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:       userID,
		RestaurantID: restaurant.ID,
		Status:       domain.StatusPending,
		TotalPrice:   decimal.Zero,
	}

	for _, item := range req.Items {
		menuItem, err := s.catalog.GetMenuItem(item.MenuItemID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", item.MenuItemID, ErrNotFound)
		}
		if err != nil {
			return nil, err
		}
		if menuItem.RestaurantID != restaurant.ID {
			return nil, fmt.Errorf("item %d: %w", item.MenuItemID, ErrOwnership)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}

		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.TotalPrice = order.TotalPrice.Add(lineTotal)

		order.Lines = append(order.Lines, domain.OrderLine{
			MenuItemID:   menuItem.ID,
			ItemName:     menuItem.Name,
			PriceAtOrder: menuItem.Price,
			Quantity:     item.Quantity,
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderPlaced(ctx, domain.OrderPlacedEvent{
			Type:         "order_placed",
			OrderID:      order.ID,
			UserID:       order.UserID,
			RestaurantID: order.RestaurantID,
			TotalPrice:   order.TotalPrice.StringFixed(2),
			Timestamp:    time.Now(),
		})
	}

	return order, nil
}

// ListUserOrders returns the caller's orders newest first, each with its
// snapshot lines. Prices come from the stored line snapshots, never from the
// live menu.
func (s *OrderService) ListUserOrders(userID int) ([]domain.OrderView, error) {
	orders, err := s.orders.ListUserOrders(userID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.OrderView, 0, len(orders))
	for _, order := range orders {
		items := make([]domain.OrderLineView, 0, len(order.Lines))
		for _, line := range order.Lines {
			items = append(items, domain.OrderLineView{
				Name:     line.ItemName,
				Quantity: line.Quantity,
				Price:    line.PriceAtOrder.StringFixed(2),
			})
		}
		views = append(views, domain.OrderView{
			ID:           order.ID,
			RestaurantID: order.RestaurantID,
			Status:       order.Status,
			TotalPrice:   order.TotalPrice.StringFixed(2),
			Date:         order.CreatedAt.Format(time.RFC3339),
			Items:        items,
		})
	}
	return views, nil
}

// UpdateStatus sets a new status from the fixed vocabulary. Transitions are
// unconstrained among the four values; there is no current-state check.
func (s *OrderService) UpdateStatus(orderID int, status string) (*domain.Order, error) {
	if !validStatuses[status] {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	order, err := s.orders.UpdateOrderStatus(orderID, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.orders.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
