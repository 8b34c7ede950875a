package storage

import (
	"log"

	"github.com/shopspring/decimal"

	"zomighty/internal/auth"
	"zomighty/internal/domain"
)

// Seed loads demo data for local development. It is a no-op when the demo
// user already exists.
func (r *PostgresRepository) Seed() error {
	exists, err := r.UsernameExists("prajwal")
	if err != nil {
		return err
	}
	if exists {
		log.Println("[zomighty] seed data already present, skipping")
		return nil
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}
	user := &domain.User{Username: "prajwal", Email: "prajwal@test.com", PasswordHash: hash}
	if err := r.CreateUser(user); err != nil {
		return err
	}

	rest := &domain.Restaurant{
		Name:        "Pizza Palace",
		Description: "Best pizza in Nashik",
		Address:     "College Road, Nashik",
		ImageURL:    "https://placehold.co/600x400",
	}
	if err := r.CreateRestaurant(rest); err != nil {
		return err
	}

	items := []domain.MenuItem{
		{
			RestaurantID: rest.ID,
			Name:         "Margherita Pizza",
			Description:  "Classic cheese and tomato",
			Price:        decimal.RequireFromString("250.00"),
			IsActive:     true,
		},
		{
			RestaurantID: rest.ID,
			Name:         "Garlic Bread",
			Description:  "Buttery garlic goodness",
			Price:        decimal.RequireFromString("120.50"),
			IsActive:     true,
		},
	}
	for i := range items {
		if err := r.CreateMenuItem(&items[i]); err != nil {
			return err
		}
	}

	log.Println("[zomighty] database seeded successfully")
	return nil
}
