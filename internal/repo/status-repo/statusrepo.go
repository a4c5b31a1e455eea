package statusrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
)

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

func scanStatus(row pgx.Row) (*domain.MlmStatus, error) {
	var (
		status   domain.MlmStatus
		earnings string
	)
	if err := row.Scan(&status.UserID, &status.CurrentLevel, &status.TotalReferrals, &earnings, &status.UpdatedAt); err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(earnings)
	if err != nil {
		return nil, fmt.Errorf("parse total earnings: %w", err)
	}
	status.TotalEarnings = total
	return &status, nil
}

func (r *Repository) GetMlmStatus(ctx context.Context, userID int) (*domain.MlmStatus, error) {
	query := `
		SELECT user_id, current_level, total_referrals, total_earnings::text, updated_at
		FROM user_mlm_status
		WHERE user_id = $1
	`
	status, err := scanStatus(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get mlm status", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return status, nil
}

func (r *Repository) UpsertMlmStatus(ctx context.Context, status *domain.MlmStatus) (*domain.MlmStatus, error) {
	query := `
		INSERT INTO user_mlm_status (user_id, current_level, total_referrals, total_earnings, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE
		SET current_level = EXCLUDED.current_level,
			total_referrals = EXCLUDED.total_referrals,
			total_earnings = EXCLUDED.total_earnings,
			updated_at = now()
		RETURNING user_id, current_level, total_referrals, total_earnings::text, updated_at
	`
	var updated *domain.MlmStatus
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, status.UserID, status.CurrentLevel, status.TotalReferrals, status.TotalEarnings.String())
		s, err := scanStatus(row)
		if err != nil {
			zap.L().Error("failed to upsert mlm status", zap.Int("userID", status.UserID), zap.Error(err))
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
