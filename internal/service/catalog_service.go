package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"zomighty/internal/domain"
)

type CatalogService struct {
	repo  CatalogRepository
	cache CatalogCache
}

func NewCatalogService(repo CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	if rest.Name == "" || rest.Address == "" {
		return fmt.Errorf("%w: missing required fields: name and address", ErrValidation)
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *CatalogService) ListRestaurants(page, perPage int, search string) (*domain.RestaurantPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 12
	}

	restaurants, total, err := s.repo.ListRestaurants(page, perPage, search)
	if err != nil {
		return nil, err
	}

	totalPages := total / perPage
	if total%perPage != 0 {
		totalPages++
	}

	return &domain.RestaurantPage{
		Restaurants: restaurants,
		Meta: domain.PageMeta{
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			TotalItems: total,
			SearchTerm: search,
		},
	}, nil
}

// GetRestaurant returns a restaurant with its menu, served from the cache
// when possible. Cache failures are ignored; the database is authoritative.
func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	key := s.cache.RestaurantKey(id)
	if cached, err := s.cache.GetRestaurant(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	rest, err := s.repo.GetRestaurantWithMenu(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetRestaurant(ctx, key, rest)
	return rest, nil
}

// DeleteRestaurant removes the restaurant and its menu items in one explicit
// cascade. Snapshot order lines are untouched, past receipts survive.
func (s *CatalogService) DeleteRestaurant(ctx context.Context, id int) error {
	rows, err := s.repo.DeleteRestaurantCascade(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("restaurant %d: %w", id, ErrNotFound)
	}
	_ = s.cache.Invalidate(ctx, s.cache.RestaurantKey(id))
	return nil
}

func (s *CatalogService) AddMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.Name == "" || item.Price.IsZero() {
		return fmt.Errorf("%w: name and price are required", ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	if _, err := s.repo.GetRestaurant(item.RestaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("restaurant %d: %w", item.RestaurantID, ErrNotFound)
		}
		return err
	}

	if err := s.repo.CreateMenuItem(item); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, s.cache.RestaurantKey(item.RestaurantID))
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
