package service

import (
	"time"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/admin"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/network"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/orders"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/settlement"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/commissionservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/graphservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/levelservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/networkservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/orderservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/settlementservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/volumeservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/metrics"
)

type OrderService interface {
	orders.Service
	settlement.PaymentService
}

type LevelService interface {
	admin.LevelService
	network.LevelService
}

type Services struct {
	OrderService      OrderService
	SettlementService settlement.Service
	LevelService      LevelService
	NetworkService    admin.NetworkService
	CommissionService admin.RatesService
}

type Options struct {
	CommissionTiers  int
	MaxTreeDepth     int
	MaxSubtreeNodes  int
	PVDivisor        int
	LevelMetric      domain.LevelMetric
	NotifyTimeout    time.Duration
	RecoveryBatch    int
	StatsBatchSize   int
	StatsConcurrency int
	StatsCacheTTL    time.Duration
}

// Deps are the infrastructure pieces that have an in-process fallback and are
// therefore chosen by the caller.
type Deps struct {
	TxManager pg.TXManager
	Cache     networkservice.Cache
	Locker    settlementservice.Locker
	Notifier  settlementservice.Notifier
}

func New(repos *repo.Repositories, deps Deps, opts Options) *Services {
	graphService := graphservice.New(repos.UserRepo, metrics.IntegrityReporter{}, opts.MaxSubtreeNodes)
	volumeService := volumeservice.New(repos.OrderRepo, graphService)
	levelService := levelservice.New(repos.LevelRepo, repos.UserRepo, repos.StatusRepo, repos.ReferralRepo, volumeService, levelservice.Options{
		Metric:    opts.LevelMetric,
		MaxDepth:  opts.MaxTreeDepth,
		BatchSize: opts.StatsBatchSize,
	})
	networkService := networkservice.New(graphService, volumeService, repos.ReferralRepo, levelService, repos.UserRepo, deps.Cache, networkservice.Options{
		MaxDepth:    opts.MaxTreeDepth,
		CacheTTL:    opts.StatsCacheTTL,
		BatchSize:   opts.StatsBatchSize,
		Concurrency: opts.StatsConcurrency,
	})
	commissionService := commissionservice.New(repos.SettingsRepo, graphService, opts.CommissionTiers)
	settlementService := settlementservice.New(
		settlementservice.Repos{
			Orders:        repos.OrderRepo,
			Users:         repos.UserRepo,
			Referrals:     repos.ReferralRepo,
			TxLog:         repos.TxLogRepo,
			ProcessingLog: repos.ProcessingLogRepo,
		},
		deps.TxManager,
		commissionService,
		deps.Notifier,
		deps.Locker,
		networkService,
		settlementservice.Options{
			NotifyTimeout: opts.NotifyTimeout,
			RecoveryBatch: opts.RecoveryBatch,
		},
	)

	return &Services{
		OrderService:      orderservice.New(repos.OrderRepo, repos.UserRepo, opts.PVDivisor),
		SettlementService: settlementService,
		LevelService:      levelService,
		NetworkService:    networkService,
		CommissionService: commissionService,
	}
}
