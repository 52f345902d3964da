package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderRowColumns = []string{"id", "number", "customer_id", "customer_name", "customer_email", "customer_phone", "customer_address", "note", "status", "total", "currency", "created_at", "updated_at"}
	lineRowColumns  = []string{"id", "cart_key", "product_id", "variant_id", "title", "unit_price", "quantity", "line_total", "image", "sku"}
)

func sampleOrder() *models.Order {
	productID := uuid.New()
	variant := "30ml"

	return &models.Order{
		ID:     uuid.New(),
		Number: "20240501-AB12CD",
		Customer: models.Customer{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "+919800000000",
			Address: "12 MG Road, Bengaluru",
		},
		Status:   models.OrderStatusPending,
		Total:    5000,
		Currency: "INR",
		Lines: []models.OrderLine{
			{
				ID:        uuid.New(),
				CartKey:   productID.String() + ":30ml",
				ProductID: productID,
				VariantID: &variant,
				Title:     "Serum (30 ml)",
				UnitPrice: 2500,
				Quantity:  2,
				LineTotal: 5000,
			},
		},
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	ctx := t.Context()
	insertOrder := regexp.QuoteMeta(`INSERT INTO orders`)
	insertLine := regexp.QuoteMeta(`INSERT INTO order_lines`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		order := sampleOrder()
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrder).
			WithArgs(order.ID, order.Number, sqlmock.AnyArg(), order.Customer.Name, order.Customer.Email, order.Customer.Phone,
				order.Customer.Address, order.Note, order.Status, order.Total, order.Currency).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(insertLine).
			WithArgs(order.Lines[0].ID, order.ID, 0, order.Lines[0].CartKey, order.Lines[0].ProductID, "30ml",
				"Serum (30 ml)", int64(2500), 2, int64(5000), "", "").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateOrder(ctx, order)

		require.NoError(t, err)
		assert.Equal(t, order.ID, order.Lines[0].OrderID)
		assert.WithinDuration(t, now, order.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate number", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrder).WillReturnError(&pq.Error{Code: "23505", Constraint: "orders_number_key"})
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, sampleOrder())

		assert.ErrorIs(t, err, repository.ErrDuplicateOrderNumber)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Other unique violation is not a number clash", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrder).WillReturnError(&pq.Error{Code: "23505", Constraint: "orders_pkey"})
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, sampleOrder())

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrDuplicateOrderNumber)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Line insert fails rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(insertOrder).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(insertLine).WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		err := repo.CreateOrder(ctx, sampleOrder())

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrDuplicateOrderNumber)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_Get(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - by number with lines", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		id := uuid.New()
		customerID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE number = $1`)).
			WithArgs("20240501-AB12CD").
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(id.String(), "20240501-AB12CD", customerID.String(), "Asha", "asha@example.com", "+91", "Addr", "", "pending", int64(5000), "INR", now, now))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM order_lines`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(lineRowColumns).
				AddRow(uuid.NewString(), "p:30ml", uuid.NewString(), "30ml", "Serum (30 ml)", int64(2500), 2, int64(5000), "", "").
				AddRow(uuid.NewString(), "q:base", uuid.NewString(), nil, "Toner", int64(1000), 1, int64(1000), "", ""))

		order, err := repo.GetOrderByNumber(ctx, "20240501-AB12CD")

		require.NoError(t, err)
		assert.Equal(t, id, order.ID)
		require.NotNil(t, order.CustomerID)
		assert.Equal(t, customerID, *order.CustomerID)
		require.Len(t, order.Lines, 2)
		require.NotNil(t, order.Lines[0].VariantID)
		assert.Equal(t, "30ml", *order.Lines[0].VariantID)
		assert.Nil(t, order.Lines[1].VariantID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - guest order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(id.String(), "20240501-ZZZZZZ", nil, "Guest", "g@example.com", "+91", "Addr", "leave at door", "pending", int64(100), "INR", now, now))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM order_lines`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(lineRowColumns))

		order, err := repo.GetOrderByID(ctx, id)

		require.NoError(t, err)
		assert.Nil(t, order.CustomerID)
		assert.Equal(t, "leave at door", order.Note)
		assert.Empty(t, order.Lines)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE number = $1`)).
			WillReturnError(sql.ErrNoRows)

		order, err := repo.GetOrderByNumber(ctx, "nope")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, order)
	})
}

func TestOrderRepository_List(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - by customer", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		customerID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders WHERE customer_id = $1`)).
			WithArgs(customerID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
			WithArgs(customerID, 2, 0).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(uuid.NewString(), "20240501-AAAAAA", customerID.String(), "A", "a@example.com", "1", "x", "", "shipped", int64(10), "INR", now, now).
				AddRow(uuid.NewString(), "20240430-BBBBBB", customerID.String(), "A", "a@example.com", "1", "x", "", "pending", int64(20), "INR", now, now))

		orders, total, err := repo.ListOrdersByCustomer(ctx, customerID, 1, 2)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, orders, 2)
		assert.Equal(t, models.OrderStatusShipped, orders[0].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - all orders", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`)).
			WithArgs(10, 10).
			WillReturnRows(sqlmock.NewRows(orderRowColumns))

		orders, total, err := repo.ListOrders(ctx, 2, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`)).
			WithArgs(models.OrderStatusConfirmed, id).
			WillReturnRows(sqlmock.NewRows(orderRowColumns).
				AddRow(id.String(), "20240501-AB12CD", nil, "A", "a@example.com", "1", "x", "", "confirmed", int64(10), "INR", now, now))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM order_lines`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(lineRowColumns))

		order, err := repo.UpdateOrderStatus(ctx, id, models.OrderStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE orders SET status`)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateOrderStatus(ctx, uuid.New(), models.OrderStatusCancelled)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
