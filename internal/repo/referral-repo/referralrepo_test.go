package referralrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM referrals WHERE order_id = $1 AND referral_level = $2)")

	mock.ExpectQuery(query).WithArgs(7, 2).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.Exists(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(query).WithArgs(7, 3).WillReturnError(errors.New("database error"))
	exists, err = repo.Exists(context.Background(), 7, 3)
	assert.Error(t, err)
	assert.False(t, exists)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("ON CONFLICT (order_id, referral_level) DO NOTHING RETURNING id, created_at")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		inserted  bool
		id        int
	}{
		{
			name: "New record",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(3, 2, 7, 1, "20", "200").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(41, now))
			},
			inserted: true,
			id:       41,
		},
		{
			name: "Record already exists",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(3, 2, 7, 1, "20", "200").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(3, 2, 7, 1, "20", "200").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			referral := &domain.Referral{
				BuyerID:    3,
				ReferrerID: 2,
				OrderID:    7,
				Level:      1,
				Rate:       decimal.NewFromInt(20),
				Amount:     decimal.NewFromInt(200),
			}
			inserted, err := repo.Insert(context.Background(), referral)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, inserted)
			assert.Equal(t, tt.id, referral.ID)
		})
	}
}

func TestRepository_SumEarnings(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM referrals WHERE referrer_id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    string
	}{
		{
			name: "Earnings summed",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow("260.00"))
			},
			result: "260",
		},
		{
			name: "Nothing earned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow("0"))
			},
			result: "0",
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SumEarnings(context.Background(), 2)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result.String())
		})
	}
}

func TestRepository_ListByOrder(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	fields := []string{"id", "user_id", "referrer_id", "order_id", "referral_level", "commission_rate", "reward_earned", "created_at"}
	query := regexp.QuoteMeta("FROM referrals WHERE order_id = $1 ORDER BY referral_level")

	t.Run("Records of every level", func(t *testing.T) {
		rows := pgxmock.NewRows(fields).
			AddRow(41, 3, 2, 7, 1, "20.00", "200.00", now).
			AddRow(42, 3, 1, 7, 2, "5.00", "50.00", now)
		mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

		result, err := repo.ListByOrder(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 2, result[0].ReferrerID)
		assert.Equal(t, "200", result[0].Amount.String())
		assert.Equal(t, "5", result[1].Rate.String())
	})

	t.Run("Broken rate", func(t *testing.T) {
		rows := pgxmock.NewRows(fields).AddRow(41, 3, 2, 7, 1, "?", "200.00", now)
		mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

		result, err := repo.ListByOrder(context.Background(), 7)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Stream interrupted", func(t *testing.T) {
		rows := pgxmock.NewRows(fields).
			AddRow(41, 3, 2, 7, 1, "20.00", "200.00", now).
			RowError(1, errors.New("conn reset"))
		mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

		result, err := repo.ListByOrder(context.Background(), 7)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))

		_, err := repo.ListByOrder(context.Background(), 7)
		assert.Error(t, err)
	})
}
