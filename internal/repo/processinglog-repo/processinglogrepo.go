package processinglogrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, orderID int, stage string, status domain.ProcessingStatus, details map[string]any) error {
	query := `
		INSERT INTO order_processing_log (order_id, processing_stage, status, details)
		VALUES ($1, $2, $3, $4)
	`
	if details == nil {
		details = map[string]any{}
	}
	if _, err := r.db.Exec(ctx, query, orderID, stage, status, details); err != nil {
		zap.L().Error("can't append processing log", zap.Int("orderID", orderID), zap.String("status", string(status)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) HasCompleted(ctx context.Context, orderID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM order_processing_log WHERE order_id = $1 AND status = 'completed')`
	var done bool
	if err := r.db.QueryRow(ctx, query, orderID).Scan(&done); err != nil {
		zap.L().Error("can't check processing log", zap.Int("orderID", orderID), zap.Error(err))
		return false, err
	}
	return done, nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int) ([]domain.ProcessingLogEntry, error) {
	query := `
		SELECT id, order_id, processing_stage, status, details, created_at
		FROM order_processing_log
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get processing log", zap.Int("orderID", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ProcessingLogEntry
	for rows.Next() {
		var e domain.ProcessingLogEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Stage, &e.Status, &e.Details, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan processing log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate processing log rows", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
