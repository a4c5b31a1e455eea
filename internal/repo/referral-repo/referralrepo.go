package referralrepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, orderID, level int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM referrals WHERE order_id = $1 AND referral_level = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, orderID, level).Scan(&exists); err != nil {
		zap.L().Error("can't check referral record", zap.Int("orderID", orderID), zap.Int("level", level), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Insert stores the bonus record unless one already exists for the same
// (order, level). It reports whether a row was written.
func (r *Repository) Insert(ctx context.Context, referral *domain.Referral) (bool, error) {
	query := `
		INSERT INTO referrals (user_id, referrer_id, order_id, referral_level, commission_rate, reward_earned)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (order_id, referral_level) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		referral.BuyerID,
		referral.ReferrerID,
		referral.OrderID,
		referral.Level,
		referral.Rate.String(),
		referral.Amount.String(),
	).Scan(&referral.ID, &referral.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't save referral record", zap.Int("orderID", referral.OrderID), zap.Int("level", referral.Level), zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) SumEarnings(ctx context.Context, referrerID int) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(reward_earned), 0)::text FROM referrals WHERE referrer_id = $1`
	var total string
	if err := r.db.QueryRow(ctx, query, referrerID).Scan(&total); err != nil {
		zap.L().Error("can't sum referral earnings", zap.Int("userID", referrerID), zap.Error(err))
		return decimal.Zero, err
	}
	earnings, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse earnings: %w", err)
	}
	return earnings, nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int) ([]domain.Referral, error) {
	query := `
		SELECT id, user_id, referrer_id, order_id, referral_level, commission_rate::text, reward_earned::text, created_at
		FROM referrals
		WHERE order_id = $1
		ORDER BY referral_level
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to fetch referral records", zap.Int("orderID", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var (
			ref          domain.Referral
			rate, reward string
		)
		if err := rows.Scan(&ref.ID, &ref.BuyerID, &ref.ReferrerID, &ref.OrderID, &ref.Level, &rate, &reward, &ref.CreatedAt); err != nil {
			zap.L().Error("failed to scan referral row", zap.Error(err))
			return nil, err
		}
		if ref.Rate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("parse commission rate: %w", err)
		}
		if ref.Amount, err = decimal.NewFromString(reward); err != nil {
			return nil, fmt.Errorf("parse reward: %w", err)
		}
		referrals = append(referrals, ref)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate referral rows", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}
