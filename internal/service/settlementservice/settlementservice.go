package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/metrics"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

const (
	stageName    = "referral_settlement"
	recentLimit  = 10
	defaultBatch = 100
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type ReferralRepo interface {
	Exists(ctx context.Context, orderID, level int) (bool, error)
	Insert(ctx context.Context, referral *domain.Referral) (bool, error)
	ListByOrder(ctx context.Context, orderID int) ([]domain.Referral, error)
}

type TxLogRepo interface {
	Create(ctx context.Context, entry *domain.TxLogEntry) error
	UpdateStatus(ctx context.Context, id int, status domain.TxStatus, meta map[string]any) error
	SetNotificationResult(ctx context.Context, id int, status domain.TxStatus, sent bool, notifyErr *string) error
	SupersedeFailed(ctx context.Context, orderID, level int) (int64, error)
	FailedOrderIDs(ctx context.Context, orderID *int, limit int) ([]int, error)
	StatusCounts(ctx context.Context) (map[domain.TxStatus]int, error)
	Recent(ctx context.Context, limit int) ([]domain.TxLogEntry, error)
	ListByOrder(ctx context.Context, orderID int) ([]domain.TxLogEntry, error)
}

type ProcessingLogRepo interface {
	Append(ctx context.Context, orderID int, stage string, status domain.ProcessingStatus, details map[string]any) error
	HasCompleted(ctx context.Context, orderID int) (bool, error)
	ListByOrder(ctx context.Context, orderID int) ([]domain.ProcessingLogEntry, error)
}

type Calculator interface {
	ComputeCommissions(ctx context.Context, order domain.Order, buyer domain.User) ([]domain.Commission, error)
}

type Notifier interface {
	NotifyBeneficiary(ctx context.Context, userID int, amount decimal.Decimal, buyerName string, level int) error
}

type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type StatsInvalidator interface {
	InvalidateUser(ctx context.Context, userID int) error
	InvalidateOrderStats(ctx context.Context) error
}

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrBuyerNotFound        = errors.New("buyer not found")
	ErrSettlementInProgress = errors.New("order settlement already in progress")
	errNotificationPanicked = errors.New("notifier panicked")
)

type Repos struct {
	Orders        OrderRepo
	Users         UserRepo
	Referrals     ReferralRepo
	TxLog         TxLogRepo
	ProcessingLog ProcessingLogRepo
}

type Options struct {
	NotifyTimeout time.Duration
	RecoveryBatch int
}

type Service struct {
	repos       Repos
	txManager   pg.TXManager
	calculator  Calculator
	notifier    Notifier
	locker      Locker
	invalidator StatsInvalidator
	opts        Options
}

func New(repos Repos, txManager pg.TXManager, calculator Calculator, notifier Notifier, locker Locker, invalidator StatsInvalidator, opts Options) *Service {
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = 5 * time.Second
	}
	if opts.RecoveryBatch <= 0 {
		opts.RecoveryBatch = defaultBatch
	}
	return &Service{
		repos:       repos,
		txManager:   txManager,
		calculator:  calculator,
		notifier:    notifier,
		locker:      locker,
		invalidator: invalidator,
		opts:        opts,
	}
}

// HandlePaymentConfirmed is the entry point for payment webhooks. An order
// whose settlement already completed is reported and left untouched.
func (s *Service) HandlePaymentConfirmed(ctx context.Context, orderID int) (*domain.SettlementResult, error) {
	done, err := s.repos.ProcessingLog.HasCompleted(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("check processing log of order %d: %w", orderID, err)
	}
	if done {
		zap.L().Info("order already settled, ignoring duplicate trigger", zap.Int("orderID", orderID))
		return &domain.SettlementResult{
			OrderID: orderID,
			Status:  domain.StageSkipped,
			Reason:  domain.ReasonAlreadyProcessed,
		}, nil
	}
	return s.SettleOrder(ctx, orderID)
}

// SettleOrder distributes commissions for one paid order. Once the order
// lock is held the run is detached from ctx cancellation and goes on until
// every level has either been recorded or failed. Per level failures are
// reported in the result, not as an error.
func (s *Service) SettleOrder(ctx context.Context, orderID int) (*domain.SettlementResult, error) {
	release, err := s.locker.Acquire(ctx, lockKey(orderID))
	if err != nil {
		return nil, fmt.Errorf("%w: order %d: %w", ErrSettlementInProgress, orderID, err)
	}
	defer release()

	ctx = context.WithoutCancel(ctx)
	started := time.Now()
	result := &domain.SettlementResult{
		OrderID:       orderID,
		TransactionID: "tx_" + uuid.NewString(),
	}
	defer func() {
		metrics.ObserveSettlement(result.Status, started)
	}()

	s.stage(ctx, result, domain.StageStarted, "", nil)

	order, err := s.repos.Orders.FindByID(ctx, orderID)
	if err != nil {
		s.stage(ctx, result, domain.StageFailed, err.Error(), nil)
		return result, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order == nil {
		s.stage(ctx, result, domain.StageFailed, domain.ReasonOrderNotFound, nil)
		return result, ErrOrderNotFound
	}
	if order.PaymentStatus != domain.PaymentPaid {
		s.stage(ctx, result, domain.StageSkipped, domain.ReasonNotPaid, map[string]any{"payment_status": order.PaymentStatus})
		return result, nil
	}

	buyer, err := s.repos.Users.FindByID(ctx, order.UserID)
	if err != nil {
		s.stage(ctx, result, domain.StageFailed, err.Error(), nil)
		return result, fmt.Errorf("load buyer %d: %w", order.UserID, err)
	}
	if buyer == nil {
		s.stage(ctx, result, domain.StageFailed, domain.ReasonBuyerNotFound, map[string]any{"buyer_id": order.UserID})
		return result, ErrBuyerNotFound
	}
	if buyer.ReferrerID == nil {
		s.stage(ctx, result, domain.StageSkipped, domain.ReasonNoReferrer, nil)
		s.invalidate(ctx, *buyer, nil)
		return result, nil
	}

	commissions, err := s.calculator.ComputeCommissions(ctx, *order, *buyer)
	if err != nil {
		s.stage(ctx, result, domain.StageFailed, err.Error(), nil)
		return result, fmt.Errorf("compute commissions for order %d: %w", orderID, err)
	}
	if len(commissions) == 0 {
		s.stage(ctx, result, domain.StageSkipped, domain.ReasonEmptyChain, nil)
		s.invalidate(ctx, *buyer, nil)
		return result, nil
	}

	var failed int
	for _, c := range commissions {
		outcome := s.settleLevel(ctx, result.TransactionID, *order, *buyer, c)
		if outcome.Status == domain.TxFailed {
			failed++
		}
		result.Levels = append(result.Levels, outcome)
	}

	if failed > 0 {
		s.stage(ctx, result, domain.StageFailed, domain.ReasonLevelsFailed, map[string]any{"failed_levels": failed})
		s.invalidate(ctx, *buyer, commissions)
		return result, nil
	}

	if err := s.repos.Orders.UpdateStatus(ctx, orderID, domain.OrderStatusSettled); err != nil {
		s.stage(ctx, result, domain.StageFailed, err.Error(), nil)
		s.invalidate(ctx, *buyer, commissions)
		return result, fmt.Errorf("mark order %d settled: %w", orderID, err)
	}
	s.stage(ctx, result, domain.StageCompleted, "", map[string]any{"paid_levels": result.Paid()})
	s.invalidate(ctx, *buyer, commissions)
	return result, nil
}

func (s *Service) settleLevel(ctx context.Context, txID string, order domain.Order, buyer domain.User, c domain.Commission) (outcome domain.LevelOutcome) {
	outcome = domain.LevelOutcome{
		Level:         c.Level,
		BeneficiaryID: c.Beneficiary.ID,
		Amount:        c.Amount,
	}
	defer func() {
		if !outcome.Skipped {
			metrics.ObserveLevel(outcome.Status, outcome.Amount)
		}
	}()

	entry := &domain.TxLogEntry{
		TransactionID: fmt.Sprintf("%s_L%d", txID, c.Level),
		OrderID:       order.ID,
		BuyerID:       buyer.ID,
		ReferrerID:    c.Beneficiary.ID,
		Level:         c.Level,
		Rate:          c.Rate,
		OrderAmount:   order.Total,
		BonusAmount:   c.Amount,
		Status:        domain.TxProcessing,
		Metadata: map[string]any{
			"buyer_name":            buyer.FirstName,
			"referrer_name":         c.Beneficiary.FirstName,
			"referrer_telegram_id":  c.Beneficiary.TelegramID,
			"commission_percentage": c.Rate.String(),
		},
	}

	exists, err := s.repos.Referrals.Exists(ctx, order.ID, c.Level)
	if err != nil {
		entry.Status = domain.TxFailed
		entry.Metadata["error"] = err.Error()
		if cerr := s.repos.TxLog.Create(ctx, entry); cerr != nil {
			zap.L().Error("can't record failed level", zap.Int("orderID", order.ID), zap.Int("level", c.Level), zap.Error(cerr))
		}
		outcome.Status, outcome.Error = domain.TxFailed, err.Error()
		return outcome
	}
	if exists {
		s.supersede(ctx, order.ID, c.Level)
		outcome.Status, outcome.Skipped = domain.TxCompleted, true
		return outcome
	}

	// The processing row is committed on its own so a crash before the
	// transaction below leaves a visible trail.
	if err := s.repos.TxLog.Create(ctx, entry); err != nil {
		outcome.Status, outcome.Error = domain.TxFailed, err.Error()
		return outcome
	}

	var inserted bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		referral := &domain.Referral{
			BuyerID:    buyer.ID,
			ReferrerID: c.Beneficiary.ID,
			OrderID:    order.ID,
			Level:      c.Level,
			Rate:       c.Rate,
			Amount:     c.Amount,
		}
		var err error
		if inserted, err = s.repos.Referrals.Insert(ctx, referral); err != nil {
			return err
		}
		if !inserted {
			return s.repos.TxLog.UpdateStatus(ctx, entry.ID, domain.TxSuperseded, map[string]any{"reason": "already_settled"})
		}
		return s.repos.TxLog.UpdateStatus(ctx, entry.ID, domain.TxCompleted, map[string]any{"referral_id": referral.ID})
	})
	if err != nil {
		zap.L().Error("commission level failed", zap.Int("orderID", order.ID), zap.Int("level", c.Level), zap.Error(err))
		if uerr := s.repos.TxLog.UpdateStatus(ctx, entry.ID, domain.TxFailed, map[string]any{"error": err.Error()}); uerr != nil {
			zap.L().Error("can't mark level failed", zap.Int("orderID", order.ID), zap.Int("level", c.Level), zap.Error(uerr))
		}
		outcome.Status, outcome.Error = domain.TxFailed, err.Error()
		return outcome
	}
	if !inserted {
		s.supersede(ctx, order.ID, c.Level)
		outcome.Status, outcome.Skipped = domain.TxSuperseded, true
		return outcome
	}
	s.supersede(ctx, order.ID, c.Level)

	outcome.Status = domain.TxCompleted
	if nerr := s.notify(ctx, c, buyer); nerr != nil {
		msg := nerr.Error()
		outcome.Status, outcome.Error = domain.TxNotificationFailed, msg
		if err := s.repos.TxLog.SetNotificationResult(ctx, entry.ID, domain.TxNotificationFailed, false, &msg); err != nil {
			zap.L().Error("can't save notification failure", zap.Int("orderID", order.ID), zap.Int("level", c.Level), zap.Error(err))
		}
		return outcome
	}
	if err := s.repos.TxLog.SetNotificationResult(ctx, entry.ID, domain.TxCompleted, true, nil); err != nil {
		zap.L().Error("can't save notification result", zap.Int("orderID", order.ID), zap.Int("level", c.Level), zap.Error(err))
	}
	return outcome
}

func (s *Service) notify(ctx context.Context, c domain.Commission, buyer domain.User) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.NotifyTimeout)
	defer cancel()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", errNotificationPanicked, p)
		}
	}()

	err = s.notifier.NotifyBeneficiary(ctx, c.Beneficiary.ID, c.Amount, buyer.FirstName, c.Level)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		zap.L().Warn("beneficiary notification failed", zap.Int("userID", c.Beneficiary.ID), zap.Int("level", c.Level), zap.Error(err))
		return err
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	return nil
}

func (s *Service) supersede(ctx context.Context, orderID, level int) {
	n, err := s.repos.TxLog.SupersedeFailed(ctx, orderID, level)
	if err != nil {
		zap.L().Error("can't supersede failed attempts", zap.Int("orderID", orderID), zap.Int("level", level), zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Info("failed attempts superseded", zap.Int("orderID", orderID), zap.Int("level", level), zap.Int64("rows", n))
	}
}

func (s *Service) stage(ctx context.Context, result *domain.SettlementResult, status domain.ProcessingStatus, reason string, details map[string]any) {
	result.Status, result.Reason = status, reason
	if details == nil {
		details = map[string]any{}
	}
	details["transaction_id"] = result.TransactionID
	if reason != "" {
		details["reason"] = reason
	}
	if err := s.repos.ProcessingLog.Append(ctx, result.OrderID, stageName, status, details); err != nil {
		zap.L().Error("can't write processing stage", zap.Int("orderID", result.OrderID), zap.String("status", string(status)), zap.Error(err))
	}
}

func (s *Service) invalidate(ctx context.Context, buyer domain.User, commissions []domain.Commission) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateUser(ctx, buyer.ID); err != nil {
		zap.L().Warn("can't invalidate buyer stats", zap.Int("userID", buyer.ID), zap.Error(err))
	}
	for _, c := range commissions {
		if err := s.invalidator.InvalidateUser(ctx, c.Beneficiary.ID); err != nil {
			zap.L().Warn("can't invalidate beneficiary stats", zap.Int("userID", c.Beneficiary.ID), zap.Error(err))
		}
	}
	if err := s.invalidator.InvalidateOrderStats(ctx); err != nil {
		zap.L().Warn("can't invalidate order stats", zap.Error(err))
	}
}

// RecoverFailedTransactions re-runs settlement for every order holding a
// failed audit row or a failed processing stage, or only for orderID when
// given. Levels that already have a bonus record are skipped by SettleOrder,
// so repeated runs are safe. Per order failures land in report.Failed; the
// error is reserved for failing to list the orders.
func (s *Service) RecoverFailedTransactions(ctx context.Context, orderID *int) (domain.RecoveryReport, error) {
	report := domain.RecoveryReport{Failed: map[int]string{}}

	ids, err := s.repos.TxLog.FailedOrderIDs(ctx, orderID, s.opts.RecoveryBatch)
	if err != nil {
		return report, fmt.Errorf("find failed transactions: %w", err)
	}
	report.Orders = ids
	zap.L().Info("recovering failed settlements", zap.Int("orders", len(ids)))

	for _, id := range ids {
		res, err := s.SettleOrder(ctx, id)
		switch {
		case err != nil:
			// a busy lock or a missing order fails this order only
			report.Failed[id] = err.Error()
			zap.L().Warn("order recovery failed", zap.Int("orderID", id), zap.Error(err))
			metrics.RecoveredOrdersTotal.WithLabelValues("error").Inc()
		case res.Status == domain.StageFailed:
			report.Failed[id] = res.Reason
			metrics.RecoveredOrdersTotal.WithLabelValues("failed").Inc()
		default:
			report.Recovered = append(report.Recovered, id)
			metrics.RecoveredOrdersTotal.WithLabelValues("recovered").Inc()
		}
	}
	return report, nil
}

func (s *Service) TransactionStats(ctx context.Context) (domain.TransactionStats, error) {
	counts, err := s.repos.TxLog.StatusCounts(ctx)
	if err != nil {
		return domain.TransactionStats{}, fmt.Errorf("count transactions: %w", err)
	}
	recent, err := s.repos.TxLog.Recent(ctx, recentLimit)
	if err != nil {
		return domain.TransactionStats{}, fmt.Errorf("load recent transactions: %w", err)
	}

	stats := domain.TransactionStats{Counts: counts, Recent: recent}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *Service) OrderAudit(ctx context.Context, orderID int) (domain.OrderAudit, error) {
	audit := domain.OrderAudit{OrderID: orderID}
	var err error
	if audit.Referrals, err = s.repos.Referrals.ListByOrder(ctx, orderID); err != nil {
		return audit, fmt.Errorf("load referral records: %w", err)
	}
	if audit.Transactions, err = s.repos.TxLog.ListByOrder(ctx, orderID); err != nil {
		return audit, fmt.Errorf("load transaction log: %w", err)
	}
	if audit.ProcessingLog, err = s.repos.ProcessingLog.ListByOrder(ctx, orderID); err != nil {
		return audit, fmt.Errorf("load processing log: %w", err)
	}
	return audit, nil
}

func lockKey(orderID int) string {
	return fmt.Sprintf("settlement:order:%d", orderID)
}
