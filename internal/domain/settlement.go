package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxStatus string

const (
	TxProcessing         TxStatus = "processing"
	TxCompleted          TxStatus = "completed"
	TxFailed             TxStatus = "failed"
	TxNotificationFailed TxStatus = "notification_failed"
	TxSuperseded         TxStatus = "superseded"
)

type ProcessingStatus string

const (
	StageStarted   ProcessingStatus = "started"
	StageSkipped   ProcessingStatus = "skipped"
	StageCompleted ProcessingStatus = "completed"
	StageFailed    ProcessingStatus = "failed"
)

const (
	ReasonNotPaid          = "not_paid"
	ReasonNoReferrer       = "no_referrer"
	ReasonOrderNotFound    = "order_not_found"
	ReasonBuyerNotFound    = "buyer_not_found"
	ReasonAlreadyProcessed = "already_processed"
	ReasonLevelsFailed     = "levels_failed"
	ReasonEmptyChain       = "empty_chain"
)

// TxLogEntry is the audit row written for one (order, level) settlement attempt.
type TxLogEntry struct {
	ID                int             `db:"id" json:"id"`
	TransactionID     string          `db:"transaction_id" json:"transaction_id"`
	OrderID           int             `db:"order_id" json:"order_id"`
	BuyerID           int             `db:"buyer_id" json:"buyer_id"`
	ReferrerID        int             `db:"referrer_id" json:"referrer_id"`
	Level             int             `db:"referral_level" json:"level"`
	Rate              decimal.Decimal `db:"commission_rate" json:"rate"`
	OrderAmount       decimal.Decimal `db:"order_amount" json:"order_amount"`
	BonusAmount       decimal.Decimal `db:"bonus_amount" json:"bonus_amount"`
	Status            TxStatus        `db:"status" json:"status"`
	NotificationSent  bool            `db:"notification_sent" json:"notification_sent"`
	NotificationError *string         `db:"notification_error" json:"notification_error,omitempty"`
	Metadata          map[string]any  `db:"metadata" json:"metadata,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	ProcessedAt       *time.Time      `db:"processed_at" json:"processed_at,omitempty"`
}

type ProcessingLogEntry struct {
	ID        int              `db:"id" json:"id"`
	OrderID   int              `db:"order_id" json:"order_id"`
	Stage     string           `db:"processing_stage" json:"stage"`
	Status    ProcessingStatus `db:"status" json:"status"`
	Details   map[string]any   `db:"details" json:"details,omitempty"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

type LevelOutcome struct {
	Level         int             `json:"level"`
	BeneficiaryID int             `json:"beneficiary_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        TxStatus        `json:"status"`
	Skipped       bool            `json:"skipped,omitempty"`
	Error         string          `json:"error,omitempty"`
}

type SettlementResult struct {
	OrderID       int              `json:"order_id"`
	TransactionID string           `json:"transaction_id"`
	Status        ProcessingStatus `json:"status"`
	Reason        string           `json:"reason,omitempty"`
	Levels        []LevelOutcome   `json:"levels,omitempty"`
}

// Paid returns the number of levels that produced a bonus record in this run.
func (r *SettlementResult) Paid() int {
	var n int
	for _, l := range r.Levels {
		if !l.Skipped && (l.Status == TxCompleted || l.Status == TxNotificationFailed) {
			n++
		}
	}
	return n
}

type RecoveryReport struct {
	Orders    []int          `json:"orders"`
	Recovered []int          `json:"recovered"`
	Failed    map[int]string `json:"failed,omitempty"`
}

type TransactionStats struct {
	Total  int              `json:"total"`
	Counts map[TxStatus]int `json:"counts"`
	Recent []TxLogEntry     `json:"recent"`
}

type OrderAudit struct {
	OrderID       int                  `json:"order_id"`
	Referrals     []Referral           `json:"referrals"`
	Transactions  []TxLogEntry         `json:"transactions"`
	ProcessingLog []ProcessingLogEntry `json:"processing_log"`
}
