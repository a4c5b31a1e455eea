package networkservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/graphservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/metrics"
)

//go:generate mockgen -source=networkservice.go -destination=mock_networkservice.go -package=networkservice

const (
	volumeKeyPrefix = "network:volume:"
	userKeyPrefix   = "network:user:"
)

type Graph interface {
	DescendantSubtree(ctx context.Context, userID, maxDepth int) ([]domain.NetworkNode, error)
}

type VolumeService interface {
	PersonalVolume(ctx context.Context, userID int, window *domain.TimeWindow) (domain.Volume, error)
	SubtreeVolume(ctx context.Context, nodes []domain.NetworkNode, window *domain.TimeWindow, walkErr error) (domain.Volume, error)
}

type EarningsRepo interface {
	SumEarnings(ctx context.Context, referrerID int) (decimal.Decimal, error)
}

type LevelService interface {
	Classify(ctx context.Context, userID int) (domain.LevelStatus, error)
}

type Directory interface {
	ListIDs(ctx context.Context, afterID, limit int) ([]int, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
}

type Options struct {
	MaxDepth    int
	CacheTTL    time.Duration
	BatchSize   int
	Concurrency int
}

type Service struct {
	graph     Graph
	volume    VolumeService
	earnings  EarningsRepo
	levels    LevelService
	directory Directory
	cache     Cache
	opts      Options
}

// volumeStats is the order derived half of NetworkStats.
type volumeStats struct {
	PersonalVolume domain.Volume         `json:"personal_volume"`
	GroupVolume    domain.Volume         `json:"group_volume"`
	Network        domain.NetworkSummary `json:"network"`
}

// userStats is the payout derived half of NetworkStats.
type userStats struct {
	Earnings     decimal.Decimal `json:"earnings"`
	CurrentLevel int             `json:"current_level"`
}

func New(graph Graph, volume VolumeService, earnings EarningsRepo, levels LevelService, directory Directory, cache Cache, opts Options) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 20
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	return &Service{
		graph:     graph,
		volume:    volume,
		earnings:  earnings,
		levels:    levels,
		directory: directory,
		cache:     cache,
		opts:      opts,
	}
}

func (s *Service) UserNetworkStats(ctx context.Context, userID int) (domain.NetworkStats, error) {
	vs, err := s.volumeStats(ctx, userID)
	if err != nil {
		return domain.NetworkStats{}, err
	}
	us, err := s.userStats(ctx, userID)
	if err != nil {
		return domain.NetworkStats{}, err
	}
	return domain.NetworkStats{
		UserID:         userID,
		PersonalVolume: vs.PersonalVolume,
		GroupVolume:    vs.GroupVolume,
		Network:        vs.Network,
		Earnings:       us.Earnings,
		CurrentLevel:   us.CurrentLevel,
	}, nil
}

func (s *Service) volumeStats(ctx context.Context, userID int) (volumeStats, error) {
	key := fmt.Sprintf("%s%d", volumeKeyPrefix, userID)
	var vs volumeStats
	if s.lookup(ctx, key, &vs) {
		return vs, nil
	}

	nodes, walkErr := s.graph.DescendantSubtree(ctx, userID, s.opts.MaxDepth)
	if walkErr != nil && !graphservice.Partial(walkErr) {
		return vs, fmt.Errorf("load downline of %d: %w", userID, walkErr)
	}

	personal, err := s.volume.PersonalVolume(ctx, userID, nil)
	if err != nil {
		return vs, err
	}
	group, err := s.volume.SubtreeVolume(ctx, nodes, nil, nil)
	if err != nil {
		return vs, err
	}

	vs = volumeStats{
		PersonalVolume: personal,
		GroupVolume:    group,
		Network:        Summarize(nodes),
	}
	vs.Network.Truncated = errors.Is(walkErr, graphservice.ErrSubtreeTruncated)
	s.store(ctx, key, vs)
	return vs, nil
}

func (s *Service) userStats(ctx context.Context, userID int) (userStats, error) {
	key := fmt.Sprintf("%s%d", userKeyPrefix, userID)
	var us userStats
	if s.lookup(ctx, key, &us) {
		return us, nil
	}

	earnings, err := s.earnings.SumEarnings(ctx, userID)
	if err != nil {
		return us, fmt.Errorf("sum earnings of %d: %w", userID, err)
	}
	level, err := s.levels.Classify(ctx, userID)
	if err != nil {
		return us, fmt.Errorf("classify %d: %w", userID, err)
	}

	us = userStats{Earnings: earnings, CurrentLevel: level.CurrentLevel.Level}
	s.store(ctx, key, us)
	return us, nil
}

// Summarize counts a downline by depth.
func Summarize(nodes []domain.NetworkNode) domain.NetworkSummary {
	summary := domain.NetworkSummary{
		Total:          len(nodes),
		LevelBreakdown: make(map[int]int),
	}
	for _, n := range nodes {
		if n.Depth == 1 {
			summary.Direct++
		}
		summary.LevelBreakdown[n.Depth]++
		if n.Depth > summary.MaxDepth {
			summary.MaxDepth = n.Depth
		}
	}
	return summary
}

// AllUsersNetworkStats computes stats for every user with bounded
// concurrency. It is a batch operation for the admin endpoint and the cron
// warm-up, never for a per-request path. Users that fail are left out and
// their errors joined.
func (s *Service) AllUsersNetworkStats(ctx context.Context) ([]domain.NetworkStats, error) {
	var (
		mu      sync.Mutex
		all     []domain.NetworkStats
		errs    error
		afterID int
	)

	for {
		ids, err := s.directory.ListIDs(ctx, afterID, s.opts.BatchSize)
		if err != nil {
			return all, errors.Join(errs, fmt.Errorf("list users after %d: %w", afterID, err))
		}
		if len(ids) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.Concurrency)
		for _, id := range ids {
			g.Go(func() error {
				stats, err := s.UserNetworkStats(gctx, id)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = errors.Join(errs, err)
					return nil
				}
				all = append(all, stats)
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			return all, errors.Join(errs, err)
		}
		afterID = ids[len(ids)-1]
	}

	zap.L().Info("network stats computed", zap.Int("users", len(all)), zap.Bool("withErrors", errs != nil))
	return all, errs
}

// InvalidateUser drops the cached earnings and level of one user.
func (s *Service) InvalidateUser(ctx context.Context, userID int) error {
	if err := s.cache.Delete(ctx, fmt.Sprintf("%s%d", userKeyPrefix, userID)); err != nil {
		return fmt.Errorf("invalidate user %d: %w", userID, err)
	}
	return nil
}

// InvalidateOrderStats drops every cached volume, since a paid order changes
// the group volume of the buyer's whole upline.
func (s *Service) InvalidateOrderStats(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, volumeKeyPrefix+"*"); err != nil {
		return fmt.Errorf("invalidate order stats: %w", err)
	}
	return nil
}

func (s *Service) lookup(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		zap.L().Warn("network stats cache read failed", zap.String("key", key), zap.Error(err))
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		return false
	}
	if found {
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	}
	return found
}

func (s *Service) store(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.opts.CacheTTL); err != nil {
		zap.L().Warn("network stats cache write failed", zap.String("key", key), zap.Error(err))
	}
}
