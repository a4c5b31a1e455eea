package settingsrepo

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

// StoredLevels is the number of commission levels referral_settings has columns for.
const StoredLevels = 3

var (
	ErrSettingsNotFound = errors.New("referral settings not found")
	ErrUnsupportedTiers = fmt.Errorf("referral settings store exactly %d commission levels", StoredLevels)
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCommissionRates(ctx context.Context) (*domain.CommissionRateConfig, error) {
	query := `
		SELECT level1_commission::text, level2_commission::text, level3_commission::text, bonus_coins_percentage::text
		FROM referral_settings
		ORDER BY id
		LIMIT 1
	`
	raw := make([]string, StoredLevels+1)
	err := r.db.QueryRow(ctx, query).Scan(&raw[0], &raw[1], &raw[2], &raw[3])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		zap.L().Error("can't get referral settings", zap.Error(err))
		return nil, err
	}

	values := make([]decimal.Decimal, len(raw))
	for i, s := range raw {
		if values[i], err = decimal.NewFromString(s); err != nil {
			return nil, fmt.Errorf("parse referral setting %d: %w", i, err)
		}
	}
	return &domain.CommissionRateConfig{
		Rates:                values[:StoredLevels],
		BonusCoinsPercentage: values[StoredLevels],
	}, nil
}

func (r *Repository) UpdateCommissionRates(ctx context.Context, cfg *domain.CommissionRateConfig) error {
	if len(cfg.Rates) != StoredLevels {
		return ErrUnsupportedTiers
	}
	query := `
		UPDATE referral_settings
		SET level1_commission = $1, level2_commission = $2, level3_commission = $3,
			bonus_coins_percentage = $4, updated_at = now()
		WHERE id = (SELECT id FROM referral_settings ORDER BY id LIMIT 1)
	`
	tag, err := r.db.Exec(ctx, query,
		cfg.Rates[0].String(),
		cfg.Rates[1].String(),
		cfg.Rates[2].String(),
		cfg.BonusCoinsPercentage.String(),
	)
	if err != nil {
		zap.L().Error("can't update referral settings", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSettingsNotFound
	}
	return nil
}
