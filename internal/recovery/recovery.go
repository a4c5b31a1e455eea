package recovery

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

//go:generate mockgen -source=recovery.go -destination=mock_recovery.go -package=recovery

type FailedOrders interface {
	FailedOrderIDs(ctx context.Context, orderID *int, limit int) ([]int, error)
}

type Recoverer interface {
	RecoverFailedTransactions(ctx context.Context, orderID *int) (domain.RecoveryReport, error)
}

type Options struct {
	Interval  time.Duration
	BatchSize int
	Workers   int
}

// Service periodically retries settlement of orders that still hold failed
// audit rows. Each order is handed to the worker pool at most once at a time.
type Service struct {
	failed     FailedOrders
	recoverer  Recoverer
	workerPool WorkerPoolI
	inFlight   sync.Map
	opts       Options
}

func New(failed FailedOrders, recoverer Recoverer, opts Options) *Service {
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	return &Service{
		failed:     failed,
		recoverer:  recoverer,
		workerPool: NewWorkerPool(opts.Workers),
		opts:       opts,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Recovery service started", zap.Duration("interval", s.opts.Interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping recovery service")
			return
		case <-ticker.C:
			s.processOrders(ctx)
		}
	}
}

func (s *Service) processOrders(ctx context.Context) {
	ids, err := s.failed.FailedOrderIDs(ctx, nil, s.opts.BatchSize)
	if err != nil {
		zap.L().Error("Failed to fetch orders for recovery", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, id := range ids {
		if _, loaded := s.inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(id)
				return s.recoverOrder(ctx, id)
			})
			if err != nil {
				s.inFlight.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling recovery", zap.Error(err))
	}
}

func (s *Service) recoverOrder(ctx context.Context, orderID int) error {
	report, err := s.recoverer.RecoverFailedTransactions(ctx, &orderID)
	if err != nil {
		return err
	}
	if reason, failed := report.Failed[orderID]; failed {
		zap.L().Warn("Order still has failed levels", zap.Int("orderID", orderID), zap.String("reason", reason))
		return nil
	}
	zap.L().Info("Order recovered", zap.Int("orderID", orderID))
	return nil
}
