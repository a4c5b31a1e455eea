package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/cache"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/config"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/jobs"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/lock"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/recovery"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/auth"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/clients"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/logger"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/notify"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	recovery *recovery.Service
	cron     *jobs.CronManager

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err = logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	deps, err := a.buildDeps(ctx, txManager)
	if err != nil {
		return err
	}
	a.srv = service.New(a.repo, deps, serviceOptions(cfg))
	a.api = handlers.New(a.srv, handlers.Security{
		Tokens:        auth.NewJWTService(cfg.JWTSecret),
		InternalToken: cfg.InternalToken,
	})
	a.recovery = recovery.New(a.repo.TxLogRepo, a.srv.SettlementService, recovery.Options{
		Interval:  cfg.RecoveryInterval,
		BatchSize: cfg.RecoveryBatch,
		Workers:   cfg.RecoveryWorkers,
	})
	a.cron = jobs.NewCronManager(a.srv.LevelService, a.srv.NetworkService, jobs.Schedules{
		LevelRecalc: cfg.LevelRecalcSchedule,
		StatsWarmup: cfg.StatsWarmupSchedule,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startRecovery(ctx)
	if err = a.startCron(ctx); err != nil {
		return fmt.Errorf("can't start cron jobs: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildDeps picks redis backed cache and locks when REDIS_URL is set and a
// telegram notifier when a bot token is set. Otherwise in-process fallbacks
// are used.
func (a *Application) buildDeps(ctx context.Context, txManager pg.TXManager) (service.Deps, error) {
	deps := service.Deps{
		TxManager: txManager,
		Cache:     cache.Noop{},
		Locker:    lock.NewLocalLocker(lock.Options{TTL: a.cfg.LockTTL, WaitTimeout: a.cfg.LockWait}),
		Notifier:  notify.Log{},
	}

	if a.cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, a.cfg.RedisURL)
		if err != nil {
			zap.L().Error("redis connect failed: ", zap.Error(err))
			return service.Deps{}, fmt.Errorf("can't connect redis: %w", err)
		}
		a.closeOnDone(ctx, rdb)
		deps.Cache = cache.New(rdb)
		deps.Locker = lock.NewRedisLocker(rdb, lock.Options{TTL: a.cfg.LockTTL, WaitTimeout: a.cfg.LockWait})
	} else {
		zap.L().Warn("REDIS_URL is empty, using in-process locks and no stats cache")
	}

	if a.cfg.TelegramToken != "" {
		bot, err := notify.NewBot(a.cfg.TelegramToken, clients.NewHTTPClient(a.cfg.NotifyTimeout))
		if err != nil {
			// settlement never depends on notifications
			zap.L().Error("telegram bot unavailable, notifications go to log", zap.Error(err))
		} else {
			deps.Notifier = notify.NewTelegram(bot, a.repo.UserRepo)
		}
	}

	return deps, nil
}

func (a *Application) closeOnDone(ctx context.Context, rdb *redis.Client) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := rdb.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}()
}

func serviceOptions(cfg *config.Config) service.Options {
	return service.Options{
		CommissionTiers:  cfg.CommissionTiers,
		MaxTreeDepth:     cfg.MaxTreeDepth,
		MaxSubtreeNodes:  cfg.MaxSubtreeNodes,
		PVDivisor:        cfg.PVDivisor,
		LevelMetric:      domain.LevelMetric(cfg.LevelMetric),
		NotifyTimeout:    cfg.NotifyTimeout,
		RecoveryBatch:    cfg.RecoveryBatch,
		StatsBatchSize:   cfg.StatsBatchSize,
		StatsConcurrency: cfg.StatsConcurrency,
		StatsCacheTTL:    cfg.StatsCacheTTL,
	}
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startRecovery(ctx context.Context) {
	a.recovery.Start(ctx)
}

func (a *Application) startCron(ctx context.Context) error {
	if err := a.cron.SetupJobs(); err != nil {
		return err
	}
	a.cron.Start()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.cron.Stop(sCtx)
	}()
	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
