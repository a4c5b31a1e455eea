package commissionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/graphservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/validate"
)

//go:generate mockgen -source=commissionservice.go -destination=mock_commissionservice.go -package=commissionservice

type SettingsRepo interface {
	GetCommissionRates(ctx context.Context) (*domain.CommissionRateConfig, error)
	UpdateCommissionRates(ctx context.Context, cfg *domain.CommissionRateConfig) error
}

type Graph interface {
	AncestorChain(ctx context.Context, userID, maxLevels int) ([]domain.User, error)
}

var ErrInvalidRates = errors.New("invalid commission rate configuration")

var hundred = decimal.NewFromInt(100)

type Service struct {
	settings SettingsRepo
	graph    Graph
	tiers    int
}

// New builds the calculator. tiers caps the number of paid levels; zero means
// as many levels as the rate configuration defines.
func New(settings SettingsRepo, graph Graph, tiers int) *Service {
	return &Service{
		settings: settings,
		graph:    graph,
		tiers:    tiers,
	}
}

// ComputeCommissions returns one entry per paid level, level 1 first. The
// rate snapshot is read once and the referrer chain is resolved once, before
// any amount is computed. A chain shorter than the configured tiers yields
// fewer entries.
func (s *Service) ComputeCommissions(ctx context.Context, order domain.Order, buyer domain.User) ([]domain.Commission, error) {
	if buyer.ReferrerID == nil {
		return nil, nil
	}

	rates, err := s.GetRates(ctx)
	if err != nil {
		return nil, err
	}

	tiers := rates.Tiers()
	if s.tiers > 0 && s.tiers < tiers {
		tiers = s.tiers
	}

	chain, err := s.graph.AncestorChain(ctx, buyer.ID, tiers)
	if err != nil {
		if !graphservice.Partial(err) {
			return nil, fmt.Errorf("resolve referrer chain of %d: %w", buyer.ID, err)
		}
		zap.L().Warn("referrer chain cut short", zap.Int("orderID", order.ID), zap.Int("levels", len(chain)), zap.Error(err))
	}

	commissions := make([]domain.Commission, 0, len(chain))
	for i, beneficiary := range chain {
		rate := rates.Rates[i]
		commissions = append(commissions, domain.Commission{
			Level:       i + 1,
			Beneficiary: beneficiary,
			Rate:        rate,
			Amount:      CalculateAmount(order.Total, rate),
		})
	}
	return commissions, nil
}

// CalculateAmount applies a percentage rate and rounds to cents.
func CalculateAmount(total, ratePercent decimal.Decimal) decimal.Decimal {
	return total.Mul(ratePercent).Div(hundred).Round(2)
}

func (s *Service) GetRates(ctx context.Context) (*domain.CommissionRateConfig, error) {
	rates, err := s.settings.GetCommissionRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load commission rates: %w", err)
	}
	if err := validate.Struct(rates); err != nil {
		zap.L().Error("stored commission rates are invalid", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRates, err)
	}
	return rates, nil
}

func (s *Service) UpdateRates(ctx context.Context, cfg *domain.CommissionRateConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRates, err)
	}
	if err := s.settings.UpdateCommissionRates(ctx, cfg); err != nil {
		return fmt.Errorf("save commission rates: %w", err)
	}
	zap.L().Info("commission rates updated", zap.Int("levels", cfg.Tiers()))
	return nil
}
