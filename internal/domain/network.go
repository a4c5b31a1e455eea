package domain

import "github.com/shopspring/decimal"

type NetworkNode struct {
	User     User
	Depth    int
	ParentID int
}

type LevelMetric string

const (
	MetricReferrals LevelMetric = "referrals"
	MetricVolume    LevelMetric = "volume"
)

type LevelStatus struct {
	UserID       int         `json:"user_id"`
	Metric       LevelMetric `json:"metric"`
	Value        int         `json:"value"`
	CurrentLevel MlmLevel    `json:"current_level"`
	NextLevel    *MlmLevel   `json:"next_level,omitempty"`
	Remaining    int         `json:"remaining"`
	Progress     int         `json:"progress"`
}

type NetworkSummary struct {
	Direct         int         `json:"direct_referrals"`
	Total          int         `json:"total_referrals"`
	LevelBreakdown map[int]int `json:"level_breakdown"`
	MaxDepth       int         `json:"max_depth"`
	Truncated      bool        `json:"truncated,omitempty"`
}

type NetworkStats struct {
	UserID         int             `json:"user_id"`
	PersonalVolume Volume          `json:"personal_volume"`
	GroupVolume    Volume          `json:"group_volume"`
	Network        NetworkSummary  `json:"network"`
	Earnings       decimal.Decimal `json:"earnings"`
	CurrentLevel   int             `json:"current_level"`
}
