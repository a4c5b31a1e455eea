package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/cache"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/config"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/lock"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/notify"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.app.cfg = &config.Config{
		CommissionTiers: 3,
		MaxTreeDepth:    16,
		PVDivisor:       200,
		LevelMetric:     "volume",
		LockTTL:         time.Second,
		LockWait:        time.Second,
	}
	s.app.repo = repo.New(nil, nil)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_NoErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestBuildDeps_Fallbacks() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := s.app.buildDeps(ctx, &pg.TxManager{})

	s.Require().NoError(err)
	s.IsType(cache.Noop{}, deps.Cache)
	s.IsType(&lock.LocalLocker{}, deps.Locker)
	s.IsType(notify.Log{}, deps.Notifier)
}

func (s *ApplicationSuite) TestBuildDeps_Redis() {
	mr := miniredis.RunT(s.T())
	s.app.cfg.RedisURL = "redis://" + mr.Addr()

	ctx, cancel := context.WithCancel(context.Background())
	deps, err := s.app.buildDeps(ctx, &pg.TxManager{})
	s.Require().NoError(err)
	s.IsType(&cache.Client{}, deps.Cache)
	s.IsType(&lock.RedisLocker{}, deps.Locker)

	cancel()
	s.app.wg.Wait()
}

func (s *ApplicationSuite) TestBuildDeps_BadRedisURL() {
	s.app.cfg.RedisURL = "://nope"

	_, err := s.app.buildDeps(context.Background(), &pg.TxManager{})

	s.Require().Error(err)
	s.Contains(err.Error(), "can't connect redis")
}

func (s *ApplicationSuite) TestServiceOptions() {
	opts := serviceOptions(s.app.cfg)

	s.Equal(3, opts.CommissionTiers)
	s.Equal(16, opts.MaxTreeDepth)
	s.Equal(200, opts.PVDivisor)
	s.Equal(domain.MetricVolume, opts.LevelMetric)
}
