package txlogrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
)

const entryColumns = `id, transaction_id, order_id, buyer_id, referrer_id, referral_level,
		commission_rate::text, order_amount::text, bonus_amount::text, status,
		notification_sent, notification_error, metadata, created_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.TxLogEntry) error {
	query := `
		INSERT INTO referral_transaction_log (transaction_id, order_id, buyer_id, referrer_id, referral_level,
			commission_rate, order_amount, bonus_amount, status, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	err := r.db.QueryRow(ctx, query,
		entry.TransactionID,
		entry.OrderID,
		entry.BuyerID,
		entry.ReferrerID,
		entry.Level,
		entry.Rate.String(),
		entry.OrderAmount.String(),
		entry.BonusAmount.String(),
		entry.Status,
		metadata,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction log", zap.String("transactionID", entry.TransactionID), zap.Error(err))
		return err
	}
	return nil
}

// UpdateStatus moves an audit row to status and merges meta into its metadata.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.TxStatus, meta map[string]any) error {
	query := `
		UPDATE referral_transaction_log
		SET status = $1, metadata = metadata || $2::jsonb, processed_at = now()
		WHERE id = $3
	`
	if meta == nil {
		meta = map[string]any{}
	}
	if _, err := r.db.Exec(ctx, query, status, meta, id); err != nil {
		zap.L().Error("failed to update transaction log", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetNotificationResult(ctx context.Context, id int, status domain.TxStatus, sent bool, notifyErr *string) error {
	query := `
		UPDATE referral_transaction_log
		SET status = $1, notification_sent = $2, notification_error = $3
		WHERE id = $4
	`
	if _, err := r.db.Exec(ctx, query, status, sent, notifyErr, id); err != nil {
		zap.L().Error("failed to save notification result", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// SupersedeFailed closes earlier failed attempts for a level that has since
// been settled, so they are no longer picked up by recovery.
func (r *Repository) SupersedeFailed(ctx context.Context, orderID, level int) (int64, error) {
	query := `
		UPDATE referral_transaction_log
		SET status = 'superseded', processed_at = now()
		WHERE order_id = $1 AND referral_level = $2 AND status = 'failed'
	`
	tag, err := r.db.Exec(ctx, query, orderID, level)
	if err != nil {
		zap.L().Error("failed to supersede failed transactions", zap.Int("orderID", orderID), zap.Int("level", level), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FailedOrderIDs lists orders with a failed audit row or whose latest
// processing stage failed. Orders that failed because the order or buyer is
// missing are left out, a retry cannot fix them.
func (r *Repository) FailedOrderIDs(ctx context.Context, orderID *int, limit int) ([]int, error) {
	query := `
		WITH latest_stage AS (
			SELECT DISTINCT ON (order_id) order_id, status, COALESCE(details->>'reason', '') AS reason
			FROM order_processing_log
			ORDER BY order_id, id DESC
		)
		SELECT order_id FROM (
			SELECT order_id FROM referral_transaction_log WHERE status = 'failed'
			UNION
			SELECT order_id FROM latest_stage
			WHERE status = 'failed' AND reason NOT IN ('order_not_found', 'buyer_not_found')
		) failed
		WHERE ($1::integer IS NULL OR order_id = $1)
		ORDER BY order_id
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, orderID, limit)
	if err != nil {
		zap.L().Error("can't get failed transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan failed order id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate failed order ids", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *Repository) StatusCounts(ctx context.Context) (map[domain.TxStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM referral_transaction_log GROUP BY status`)
	if err != nil {
		zap.L().Error("can't count transactions by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TxStatus]int)
	for rows.Next() {
		var (
			status domain.TxStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			zap.L().Error("can't scan status count", zap.Error(err))
			return nil, err
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate status counts", zap.Error(err))
		return nil, err
	}
	return counts, nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]domain.TxLogEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM referral_transaction_log ORDER BY id DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int) ([]domain.TxLogEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM referral_transaction_log WHERE order_id = $1 ORDER BY id`
	return r.list(ctx, query, orderID)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.TxLogEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get transaction log", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TxLogEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan transaction log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transaction log rows", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (domain.TxLogEntry, error) {
	var (
		e                   domain.TxLogEntry
		rate, amount, bonus string
	)
	err := row.Scan(&e.ID, &e.TransactionID, &e.OrderID, &e.BuyerID, &e.ReferrerID, &e.Level,
		&rate, &amount, &bonus, &e.Status,
		&e.NotificationSent, &e.NotificationError, &e.Metadata, &e.CreatedAt, &e.ProcessedAt)
	if err != nil {
		return e, err
	}
	if e.Rate, err = decimal.NewFromString(rate); err != nil {
		return e, fmt.Errorf("parse commission rate: %w", err)
	}
	if e.OrderAmount, err = decimal.NewFromString(amount); err != nil {
		return e, fmt.Errorf("parse order amount: %w", err)
	}
	if e.BonusAmount, err = decimal.NewFromString(bonus); err != nil {
		return e, fmt.Errorf("parse bonus amount: %w", err)
	}
	return e, nil
}
