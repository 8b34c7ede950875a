package tests

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"zomighty/internal/domain"
	"zomighty/internal/storage"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return storage.NewPostgresRepository(db), mock, func() { db.Close() }
}

func TestCreateOrder_CommitsHeaderAndLines(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	now := time.Now()
	order := &domain.Order{
		UserID:       42,
		RestaurantID: 1,
		Status:       domain.StatusPending,
		TotalPrice:   dec("13.50"),
		Lines: []domain.OrderLine{
			{MenuItemID: 10, ItemName: "Margherita", PriceAtOrder: dec("5.00"), Quantity: 2},
			{MenuItemID: 11, ItemName: "Garlic Bread", PriceAtOrder: dec("3.50"), Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(42, 1, domain.StatusPending, order.TotalPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(7, 10, "Margherita", order.Lines[0].PriceAtOrder, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(7, 11, "Garlic Bread", order.Lines[1].PriceAtOrder, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectCommit()

	err := repo.CreateOrder(order)

	assert.NoError(t, err)
	assert.Equal(t, 7, order.ID)
	assert.Equal(t, 7, order.Lines[0].OrderID)
	assert.Equal(t, 100, order.Lines[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RollsBackOnLineFailure(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	order := &domain.Order{
		UserID:       42,
		RestaurantID: 1,
		Status:       domain.StatusPending,
		TotalPrice:   dec("5.00"),
		Lines: []domain.OrderLine{
			{MenuItemID: 10, ItemName: "Margherita", PriceAtOrder: dec("5.00"), Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(42, 1, domain.StatusPending, order.TotalPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.CreateOrder(order)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RollsBackOnHeaderFailure(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.CreateOrder(&domain.Order{UserID: 42, RestaurantID: 1, Status: domain.StatusPending})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUserOrders_NewestFirst(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	later := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, user_id, restaurant_id").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "restaurant_id", "status", "total_price", "created_at"}).
			AddRow(8, 42, 1, "pending", "120.50", later).
			AddRow(7, 42, 1, "delivered", "13.50", earlier))
	mock.ExpectQuery("SELECT id, order_id, menu_item_id").
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "item_name", "price_at_order", "quantity"}).
			AddRow(101, 8, 11, "Garlic Bread", "120.50", 1))
	mock.ExpectQuery("SELECT id, order_id, menu_item_id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "item_name", "price_at_order", "quantity"}).
			AddRow(100, 7, 10, "Margherita", "13.50", 1))

	orders, err := repo.ListUserOrders(42)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 8, orders[0].ID)
	assert.Equal(t, "120.50", orders[0].TotalPrice.StringFixed(2))
	assert.Equal(t, "Garlic Bread", orders[0].Lines[0].ItemName)
	assert.Equal(t, 7, orders[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus_NotFound(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("preparing", 99).
		WillReturnError(sql.ErrNoRows)

	order, err := repo.UpdateOrderStatus(99, "preparing")

	assert.Nil(t, order)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteRestaurantCascade(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM menu_items").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM restaurants").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.DeleteRestaurantCascade(1)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRestaurantCascade_Missing(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM menu_items").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM restaurants").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.DeleteRestaurantCascade(99)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestListRestaurants_SearchAndPaging(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants`).
		WithArgs("pizza").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id, name").
		WithArgs("pizza", 12, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "address", "image_url", "created_at"}).
			AddRow(1, "Pizza Palace", "", "MG Road", "", now))
	mock.ExpectQuery("SELECT id, restaurant_id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "description", "price", "is_active"}).
			AddRow(10, 1, "Margherita", "", "250.00", true))

	restaurants, total, err := repo.ListRestaurants(1, 12, "pizza")

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, restaurants, 1)
	assert.Equal(t, "Pizza Palace", restaurants[0].Name)
	assert.Equal(t, "250.00", restaurants[0].MenuItems[0].Price.StringFixed(2))
}

func TestGetMenuItem(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, restaurant_id, name").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "description", "price", "is_active"}).
			AddRow(10, 1, "Margherita", "Classic", "250.00", true))

	item, err := repo.GetMenuItem(10)

	assert.NoError(t, err)
	assert.Equal(t, 1, item.RestaurantID)
	assert.Equal(t, "250.00", item.Price.StringFixed(2))
}

func TestSaveAndGetQRCode(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	png := []byte{0x89, 0x50, 0x4e, 0x47}

	mock.ExpectExec("UPDATE orders SET qr_code").
		WithArgs(png, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT qr_code FROM orders").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow(png))

	assert.NoError(t, repo.SaveQRCode(7, png))

	got, err := repo.GetQRCode(7)
	assert.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestEnsureSchema(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	for i := 0; i < 5; i++ {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}
