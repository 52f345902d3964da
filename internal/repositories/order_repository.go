package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/models"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateOrderNumber is returned by CreateOrder when the generated order
// number is already taken. Callers regenerate and retry.
var ErrDuplicateOrderNumber = errors.New("duplicate order number")

const uniqueViolation = "23505"

// implicit name of the UNIQUE on orders.number
const orderNumberConstraint = "orders_number_key"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error)
	ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, number, customer_id, customer_name, customer_email, customer_phone, customer_address, note, status, total, currency, created_at, updated_at`

func scanOrder(row rowScanner) (*models.Order, error) {
	o := &models.Order{}

	var customerID uuid.NullUUID

	err := row.Scan(&o.ID, &o.Number, &customerID, &o.Customer.Name, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address,
		&o.Note, &o.Status, &o.Total, &o.Currency, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		o.CustomerID = &customerID.UUID
	}

	return o, nil
}

// CreateOrder writes the order and its lines in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, number, customer_id, customer_name, customer_email, customer_phone, customer_address, note, status, total, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at`

	var customerID uuid.NullUUID
	if order.CustomerID != nil {
		customerID = uuid.NullUUID{UUID: *order.CustomerID, Valid: true}
	}

	err = tx.QueryRowContext(dbCtx, query, order.ID, order.Number, customerID, order.Customer.Name, order.Customer.Email,
		order.Customer.Phone, order.Customer.Address, order.Note, order.Status, order.Total, order.Currency).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == orderNumberConstraint {
			return ErrDuplicateOrderNumber
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (id, order_id, position, cart_key, product_id, variant_id, title, unit_price, quantity, line_total, image, sku)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID

		_, err := tx.ExecContext(dbCtx, lineQuery, line.ID, order.ID, i, line.CartKey, line.ProductID, line.VariantID,
			line.Title, line.UnitPrice, line.Quantity, line.LineTotal, line.Image, line.SKU)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return r.getOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

func (r *orderRepository) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	return r.getOrder(ctx, `SELECT `+orderColumns+` FROM orders WHERE number = $1`, number)
}

func (r *orderRepository) getOrder(ctx context.Context, query string, arg any) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, arg))
	if err != nil {
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	lines, err := r.getLines(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return order, nil
}

func (r *orderRepository) getLines(ctx context.Context, orderID uuid.UUID) ([]models.OrderLine, error) {
	query := `
		SELECT id, cart_key, product_id, variant_id, title, unit_price, quantity, line_total, image, sku
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order lines: %w", err)
	}
	defer rows.Close()

	lines := []models.OrderLine{}
	for rows.Next() {
		var (
			line      models.OrderLine
			variantID sql.NullString
		)

		err := rows.Scan(&line.ID, &line.CartKey, &line.ProductID, &variantID, &line.Title, &line.UnitPrice, &line.Quantity, &line.LineTotal, &line.Image, &line.SKU)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}

		if variantID.Valid {
			line.VariantID = &variantID.String
		}
		line.OrderID = orderID

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return lines, nil
}

// ListOrdersByCustomer returns order headers only; lines are loaded by the
// single-order lookups.
func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error) {
	return r.listOrders(ctx, ` WHERE customer_id = $1`, page, size, customerID)
}

func (r *orderRepository) ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error) {
	return r.listOrders(ctx, ``, page, size)
}

func (r *orderRepository) listOrders(ctx context.Context, where string, page, size int, args ...any) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size
	n := len(args)

	query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, orderColumns, where, n+1, n+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, size, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus changes the status only. Lines are snapshots and are
// never touched after creation.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + orderColumns

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, status, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	lines, err := r.getLines(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return order, nil
}
