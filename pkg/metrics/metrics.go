package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

const namespace = "vitawin"

var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Order settlements by final stage status",
		},
		[]string{"status"},
	)
	SettlementLevelsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_levels_total",
			Help:      "Commission levels processed by audit status",
		},
		[]string{"status"},
	)
	SettlementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_duration_seconds",
			Help:      "Time spent settling one order",
			Buckets:   prometheus.DefBuckets,
		},
	)
	CommissionPaidTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_paid_total",
			Help:      "Sum of commission amounts recorded",
		},
	)
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Beneficiary notifications by result",
		},
		[]string{"result"},
	)
	IntegrityErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_errors_total",
			Help:      "Referrer graph integrity errors by kind",
		},
		[]string{"kind"},
	)
	RecoveredOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recovered_orders_total",
			Help:      "Orders re-run by the recovery sweep by result",
		},
		[]string{"result"},
	)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "network_stats_cache_requests_total",
			Help:      "Network stats cache lookups by result",
		},
		[]string{"result"},
	)
)

func ObserveSettlement(status domain.ProcessingStatus, started time.Time) {
	SettlementsTotal.WithLabelValues(string(status)).Inc()
	SettlementDuration.Observe(time.Since(started).Seconds())
}

func ObserveLevel(status domain.TxStatus, amount decimal.Decimal) {
	SettlementLevelsTotal.WithLabelValues(string(status)).Inc()
	if status == domain.TxCompleted || status == domain.TxNotificationFailed {
		f, _ := amount.Float64()
		CommissionPaidTotal.Add(f)
	}
}

// IntegrityReporter is the operational channel for referrer graph errors.
type IntegrityReporter struct{}

func (IntegrityReporter) ReportIntegrity(err error) {
	var ie *domain.IntegrityError
	if !errors.As(err, &ie) {
		return
	}
	IntegrityErrorsTotal.WithLabelValues(string(ie.Kind)).Inc()
	zap.L().Error("referrer graph integrity error",
		zap.String("kind", string(ie.Kind)),
		zap.Int("userID", ie.UserID),
		zap.Int("refID", ie.RefID),
		zap.Error(err),
	)
}
