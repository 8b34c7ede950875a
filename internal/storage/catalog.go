package storage

import "zomighty/internal/domain"

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (name, description, address, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rest.Name, rest.Description, rest.Address, rest.ImageURL).
		Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants(page, perPage int, search string) ([]domain.Restaurant, int, error) {
	var total int
	if err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM restaurants
		WHERE name ILIKE '%' || $1 || '%'
	`, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), address, COALESCE(image_url, ''), created_at
		FROM restaurants
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, search, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.ImageURL, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}

	for i := range restaurants {
		items, err := r.listMenuItems(restaurants[i].ID)
		if err != nil {
			return nil, 0, err
		}
		restaurants[i].MenuItems = items
	}

	return restaurants, total, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), address, COALESCE(image_url, ''), created_at
		FROM restaurants
		WHERE id = $1
	`, id).
		Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.ImageURL, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantWithMenu(id int) (*domain.Restaurant, error) {
	rest, err := r.GetRestaurant(id)
	if err != nil {
		return nil, err
	}

	items, err := r.listMenuItems(id)
	if err != nil {
		return nil, err
	}
	rest.MenuItems = items
	return rest, nil
}

// DeleteRestaurantCascade removes the restaurant and its menu items in one
// transaction. Order lines keep their snapshots and are deliberately left
// alone. Returns the number of restaurant rows deleted (0 means not found).
func (r *PostgresRepository) DeleteRestaurantCascade(id int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM menu_items WHERE restaurant_id = $1", id); err != nil {
		return 0, err
	}

	result, err := tx.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return rows, tx.Commit()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, description, price, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, item.RestaurantID, item.Name, item.Description, item.Price, item.IsActive).
		Scan(&item.ID)
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, is_active
		FROM menu_items
		WHERE id = $1
	`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.IsActive)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) listMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, is_active
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id ASC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price, &item.IsActive); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
