package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

//go:generate mockgen -source=cron.go -destination=mock_cron.go -package=jobs

type LevelRecalculator interface {
	RecalculateAll(ctx context.Context) (int, error)
}

type StatsWarmer interface {
	AllUsersNetworkStats(ctx context.Context) ([]domain.NetworkStats, error)
}

// Schedules are standard five field cron specs. An empty spec disables the job.
type Schedules struct {
	LevelRecalc string
	StatsWarmup string
}

type CronManager struct {
	cron      *cron.Cron
	levels    LevelRecalculator
	stats     StatsWarmer
	schedules Schedules
	timeout   time.Duration
}

func NewCronManager(levels LevelRecalculator, stats StatsWarmer, schedules Schedules) *CronManager {
	logger := cronLogger{zap.S()}
	return &CronManager{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		levels:    levels,
		stats:     stats,
		schedules: schedules,
		timeout:   30 * time.Minute,
	}
}

func (cm *CronManager) SetupJobs() error {
	if spec := cm.schedules.LevelRecalc; spec != "" {
		if _, err := cm.cron.AddFunc(spec, cm.recalculateLevels); err != nil {
			return fmt.Errorf("schedule level recalculation %q: %w", spec, err)
		}
		zap.L().Info("Level recalculation scheduled", zap.String("spec", spec))
	}
	if spec := cm.schedules.StatsWarmup; spec != "" {
		if _, err := cm.cron.AddFunc(spec, cm.warmNetworkStats); err != nil {
			return fmt.Errorf("schedule network stats warm-up %q: %w", spec, err)
		}
		zap.L().Info("Network stats warm-up scheduled", zap.String("spec", spec))
	}
	return nil
}

func (cm *CronManager) recalculateLevels() {
	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	started := time.Now()
	n, err := cm.levels.RecalculateAll(ctx)
	if err != nil {
		zap.L().Error("Level recalculation finished with errors", zap.Int("users", n), zap.Error(err))
		return
	}
	zap.L().Info("Level recalculation finished", zap.Int("users", n), zap.Duration("elapsed", time.Since(started)))
}

func (cm *CronManager) warmNetworkStats() {
	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	stats, err := cm.stats.AllUsersNetworkStats(ctx)
	if err != nil {
		zap.L().Error("Network stats warm-up finished with errors", zap.Int("users", len(stats)), zap.Error(err))
		return
	}
	zap.L().Info("Network stats warmed up", zap.Int("users", len(stats)))
}

func (cm *CronManager) Start() {
	zap.L().Info("Starting cron scheduler", zap.Int("jobs", len(cm.cron.Entries())))
	cm.cron.Start()
}

// Stop waits for running jobs to finish or ctx to be done.
func (cm *CronManager) Stop(ctx context.Context) {
	zap.L().Info("Stopping cron scheduler")
	select {
	case <-cm.cron.Stop().Done():
	case <-ctx.Done():
	}
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
