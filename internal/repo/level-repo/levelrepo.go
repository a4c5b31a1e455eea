package levelrepo

import (
	"context"
	"fmt"

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

// ListLevels returns the level table ordered from the lowest tier up.
func (r *Repository) ListLevels(ctx context.Context) ([]domain.MlmLevel, error) {
	query := `
		SELECT level, name, percentage::text, required_referrals, required_volume
		FROM mlm_levels
		ORDER BY level
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get mlm levels", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var levels []domain.MlmLevel
	for rows.Next() {
		var (
			level      domain.MlmLevel
			percentage string
		)
		if err := rows.Scan(&level.Level, &level.Name, &percentage, &level.RequiredReferrals, &level.RequiredVolume); err != nil {
			zap.L().Error("can't scan mlm level", zap.Error(err))
			return nil, err
		}
		if level.Percentage, err = decimal.NewFromString(percentage); err != nil {
			return nil, fmt.Errorf("parse level percentage: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate mlm levels", zap.Error(err))
		return nil, err
	}
	return levels, nil
}
