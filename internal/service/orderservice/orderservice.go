package orderservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	MarkPaid(ctx context.Context, id int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	repo      Repo
	users     UserRepo
	pvDivisor int
}

func New(repo Repo, users UserRepo, pvDivisor int) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		pvDivisor: pvDivisor,
	}
}

// NewOrderStatus is the fulfilment status of an order nobody has settled yet.
const NewOrderStatus = "new"

var (
	ErrInvalidTotal  = errors.New("order total must be positive")
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
)

// CreateOrder registers an order placed on the storefront. Point value is
// derived from the total at creation and stored with the order.
func (s *Service) CreateOrder(ctx context.Context, userID int, total decimal.Decimal, paid bool) (*domain.Order, error) {
	if !total.IsPositive() {
		return nil, ErrInvalidTotal
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	order := &domain.Order{
		UserID:        userID,
		Total:         total.Round(2),
		PVEarned:      domain.CalculatePV(total, s.pvDivisor),
		PaymentStatus: domain.PaymentPending,
		Status:        NewOrderStatus,
	}
	if paid {
		order.PaymentStatus = domain.PaymentPaid
	}

	if err := s.repo.Create(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return order, nil
}

// ConfirmPayment marks the order paid. Confirming an already paid order is
// not an error.
func (s *Service) ConfirmPayment(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.PaymentStatus == domain.PaymentPaid {
		return order, nil
	}

	if _, err := s.repo.MarkPaid(ctx, orderID); err != nil {
		return nil, err
	}
	order.PaymentStatus = domain.PaymentPaid
	zap.L().Info("order payment confirmed", zap.Int("orderID", orderID))
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return orders, nil
}
