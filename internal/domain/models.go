package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	ReferrerID   *int      `db:"referrer_id"`
	ReferralCode string    `db:"referral_code"`
	FirstName    string    `db:"first_name"`
	TelegramID   *int64    `db:"telegram_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

const OrderStatusSettled = "settled"

type Order struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Total         decimal.Decimal `db:"total"`
	PVEarned      int             `db:"pv_earned"`
	PaymentStatus PaymentStatus   `db:"payment_status"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// CommissionRateConfig holds the percentage paid per commission level,
// Rates[0] being level 1.
type CommissionRateConfig struct {
	Rates                []decimal.Decimal `json:"rates" validate:"min=1,max=10,dive,gte=0,lte=100"`
	BonusCoinsPercentage decimal.Decimal   `json:"bonus_coins_percentage" validate:"gte=0,lte=100"`
}

func (c CommissionRateConfig) Tiers() int {
	return len(c.Rates)
}

type MlmLevel struct {
	Level             int             `db:"level" json:"level"`
	Name              string          `db:"name" json:"name"`
	Percentage        decimal.Decimal `db:"percentage" json:"percentage"`
	RequiredReferrals int             `db:"required_referrals" json:"required_referrals"`
	RequiredVolume    int             `db:"required_volume" json:"required_volume"`
}

type MlmStatus struct {
	UserID         int             `db:"user_id"`
	CurrentLevel   int             `db:"current_level"`
	TotalReferrals int             `db:"total_referrals"`
	TotalEarnings  decimal.Decimal `db:"total_earnings"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Referral is the bonus record paid to one beneficiary for one order level.
type Referral struct {
	ID         int             `db:"id" json:"id"`
	BuyerID    int             `db:"user_id" json:"buyer_id"`
	ReferrerID int             `db:"referrer_id" json:"referrer_id"`
	OrderID    int             `db:"order_id" json:"order_id"`
	Level      int             `db:"referral_level" json:"level"`
	Rate       decimal.Decimal `db:"commission_rate" json:"rate"`
	Amount     decimal.Decimal `db:"reward_earned" json:"amount"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

type Commission struct {
	Level       int
	Beneficiary User
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

type TimeWindow struct {
	From time.Time
	To   time.Time
}

type Volume struct {
	Amount     decimal.Decimal `json:"amount"`
	PV         int             `json:"pv"`
	OrderCount int             `json:"order_count"`
}

func (v Volume) Add(o Volume) Volume {
	return Volume{
		Amount:     v.Amount.Add(o.Amount),
		PV:         v.PV + o.PV,
		OrderCount: v.OrderCount + o.OrderCount,
	}
}

// CalculatePV converts an order amount to point value, whole points only.
func CalculatePV(amount decimal.Decimal, divisor int) int {
	if divisor <= 0 || amount.IsNegative() {
		return 0
	}
	return int(amount.Div(decimal.NewFromInt(int64(divisor))).Floor().IntPart())
}
