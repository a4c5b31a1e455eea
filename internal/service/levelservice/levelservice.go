package levelservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/graphservice"
)

//go:generate mockgen -source=levelservice.go -destination=mock_levelservice.go -package=levelservice

type LevelRepo interface {
	ListLevels(ctx context.Context) ([]domain.MlmLevel, error)
}

type Directory interface {
	CountDirectReferrals(ctx context.Context, userID int) (int, error)
	ListIDs(ctx context.Context, afterID, limit int) ([]int, error)
}

type StatusRepo interface {
	UpsertMlmStatus(ctx context.Context, status *domain.MlmStatus) (*domain.MlmStatus, error)
}

type EarningsRepo interface {
	SumEarnings(ctx context.Context, referrerID int) (decimal.Decimal, error)
}

type VolumeService interface {
	GroupVolume(ctx context.Context, userID, maxDepth int, window *domain.TimeWindow) (domain.Volume, error)
}

var ErrUnknownMetric = errors.New("unknown level metric")

type Options struct {
	Metric    domain.LevelMetric
	MaxDepth  int
	BatchSize int
}

type Service struct {
	levels    LevelRepo
	directory Directory
	status    StatusRepo
	earnings  EarningsRepo
	volume    VolumeService
	opts      Options
}

func New(levels LevelRepo, directory Directory, status StatusRepo, earnings EarningsRepo, volume VolumeService, opts Options) *Service {
	if opts.Metric == "" {
		opts.Metric = domain.MetricReferrals
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Service{
		levels:    levels,
		directory: directory,
		status:    status,
		earnings:  earnings,
		volume:    volume,
		opts:      opts,
	}
}

func (s *Service) Classify(ctx context.Context, userID int) (domain.LevelStatus, error) {
	levels, err := s.levels.ListLevels(ctx)
	if err != nil {
		return domain.LevelStatus{}, fmt.Errorf("load levels: %w", err)
	}
	value, err := s.metricValue(ctx, userID)
	if err != nil {
		return domain.LevelStatus{}, err
	}
	status := Evaluate(levels, s.opts.Metric, value)
	status.UserID = userID
	return status, nil
}

// Evaluate places value on the ascending level table. The current level is the
// highest threshold met, level 1 when none is. Progress is 100 at the top.
func Evaluate(levels []domain.MlmLevel, metric domain.LevelMetric, value int) domain.LevelStatus {
	status := domain.LevelStatus{
		Metric:       metric,
		Value:        value,
		CurrentLevel: domain.MlmLevel{Level: 1},
		Progress:     100,
	}
	if len(levels) > 0 && levels[0].Level == 1 {
		status.CurrentLevel = levels[0]
	}

	for i := range levels {
		if value >= threshold(levels[i], metric) {
			status.CurrentLevel = levels[i]
			continue
		}
		next := levels[i]
		status.NextLevel = &next
		break
	}

	if status.NextLevel != nil {
		required := threshold(*status.NextLevel, metric)
		status.Remaining = required - value
		status.Progress = (value*100 + required/2) / required
	}
	return status
}

func threshold(level domain.MlmLevel, metric domain.LevelMetric) int {
	if metric == domain.MetricVolume {
		return level.RequiredVolume
	}
	return level.RequiredReferrals
}

func (s *Service) metricValue(ctx context.Context, userID int) (int, error) {
	switch s.opts.Metric {
	case domain.MetricReferrals:
		count, err := s.directory.CountDirectReferrals(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("count referrals of %d: %w", userID, err)
		}
		return count, nil
	case domain.MetricVolume:
		volume, err := s.volume.GroupVolume(ctx, userID, s.opts.MaxDepth, nil)
		if err != nil && !graphservice.Partial(err) {
			return 0, fmt.Errorf("group volume of %d: %w", userID, err)
		}
		return volume.PV, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMetric, s.opts.Metric)
	}
}

// Recalculate classifies userID and stores the result in the cached MLM status.
func (s *Service) Recalculate(ctx context.Context, userID int) (*domain.MlmStatus, error) {
	level, err := s.Classify(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals := level.Value
	if s.opts.Metric != domain.MetricReferrals {
		if referrals, err = s.directory.CountDirectReferrals(ctx, userID); err != nil {
			return nil, fmt.Errorf("count referrals of %d: %w", userID, err)
		}
	}
	earnings, err := s.earnings.SumEarnings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum earnings of %d: %w", userID, err)
	}

	status, err := s.status.UpsertMlmStatus(ctx, &domain.MlmStatus{
		UserID:         userID,
		CurrentLevel:   level.CurrentLevel.Level,
		TotalReferrals: referrals,
		TotalEarnings:  earnings,
	})
	if err != nil {
		return nil, fmt.Errorf("save mlm status of %d: %w", userID, err)
	}
	return status, nil
}

// RecalculateAll refreshes every user's MLM status page by page. Failures for
// single users are collected and do not stop the batch.
func (s *Service) RecalculateAll(ctx context.Context) (int, error) {
	var (
		updated int
		errs    error
		afterID int
	)
	for {
		ids, err := s.directory.ListIDs(ctx, afterID, s.opts.BatchSize)
		if err != nil {
			return updated, errors.Join(errs, fmt.Errorf("list users after %d: %w", afterID, err))
		}
		if len(ids) == 0 {
			break
		}
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return updated, errors.Join(errs, err)
			}
			if _, err := s.Recalculate(ctx, id); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			updated++
		}
		afterID = ids[len(ids)-1]
	}

	zap.L().Info("mlm levels recalculated", zap.Int("updated", updated), zap.Bool("withErrors", errs != nil))
	return updated, errs
}
