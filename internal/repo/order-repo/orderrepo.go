package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
)

const orderColumns = `id, user_id, total::text, pv_earned, payment_status, status, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order domain.Order
		total string
	)
	err := row.Scan(&order.ID, &order.UserID, &total, &order.PVEarned, &order.PaymentStatus, &order.Status, &order.CreatedAt)
	if err != nil {
		return order, err
	}
	order.Total, err = decimal.NewFromString(total)
	if err != nil {
		return order, fmt.Errorf("parse order total: %w", err)
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int("orderID", id), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (user_id, total, pv_earned, payment_status, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, order.UserID, order.Total.String(), order.PVEarned, order.PaymentStatus, order.Status)
		if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("failed to update order status", zap.Int("orderID", id), zap.Error(err))
		return err
	}
	return nil
}

// MarkPaid flips payment_status to paid. It reports false when the order was
// already paid or does not exist.
func (r *Repository) MarkPaid(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE orders
		SET payment_status = 'paid'
		WHERE id = $1 AND payment_status <> 'paid'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark order paid", zap.Int("orderID", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SumPaid aggregates paid orders of the given users, optionally bounded by window.
func (r *Repository) SumPaid(ctx context.Context, userIDs []int, window *domain.TimeWindow) (domain.Volume, error) {
	if len(userIDs) == 0 {
		return domain.Volume{Amount: decimal.Zero}, nil
	}
	query := `
		SELECT COALESCE(SUM(total), 0)::text, COALESCE(SUM(pv_earned), 0), COUNT(*)
		FROM orders
		WHERE user_id = ANY($1)
			AND payment_status = 'paid'
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at <= $3)
	`
	var from, to *time.Time
	if window != nil {
		if !window.From.IsZero() {
			from = &window.From
		}
		if !window.To.IsZero() {
			to = &window.To
		}
	}

	var (
		volume domain.Volume
		amount string
	)
	err := r.db.QueryRow(ctx, query, userIDs, from, to).Scan(&amount, &volume.PV, &volume.OrderCount)
	if err != nil {
		zap.L().Error("can't sum paid orders", zap.Error(err))
		return domain.Volume{}, err
	}
	volume.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("parse volume amount: %w", err)
	}
	return volume, nil
}
