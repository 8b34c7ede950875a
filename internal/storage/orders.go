package storage

import "zomighty/internal/domain"

// CreateOrder writes the order header and all its lines in one transaction.
// The header goes first so the lines can reference its generated id; any
// failure before commit rolls the whole order back.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (user_id, restaurant_id, status, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, order.UserID, order.RestaurantID, order.Status, order.TotalPrice).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, item_name, price_at_order, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, line.OrderID, line.MenuItemID, line.ItemName, line.PriceAtOrder, line.Quantity).
			Scan(&line.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListUserOrders returns the user's orders newest first (id breaks creation
// time ties) with their snapshot lines attached.
func (r *PostgresRepository) ListUserOrders(userID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, restaurant_id, status, total_price, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Status, &order.TotalPrice, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := r.getOrderLines(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

func (r *PostgresRepository) getOrderLines(orderID int) ([]domain.OrderLine, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, item_name, price_at_order, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.MenuItemID, &line.ItemName, &line.PriceAtOrder, &line.Quantity); err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		UPDATE orders SET status = $1
		WHERE id = $2
		RETURNING id, user_id, restaurant_id, status, total_price, created_at
	`, status, orderID).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Status, &order.TotalPrice, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}
