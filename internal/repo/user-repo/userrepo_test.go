package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

var userFields = []string{"id", "referrer_id", "referral_code", "first_name", "telegram_id", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func intPtr(v int) *int { return &v }

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	chatID := int64(555)
	query := regexp.QuoteMeta("FROM users WHERE id = $1")

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			id:   2,
			mockSetup: func() {
				rows := pgxmock.NewRows(userFields).
					AddRow(2, intPtr(1), "REF2", "Anna", &chatID, now)
				mock.ExpectQuery(query).WithArgs(2).WillReturnRows(rows)
			},
			result: &domain.User{ID: 2, ReferrerID: intPtr(1), ReferralCode: "REF2", FirstName: "Anna", TelegramID: &chatID, CreatedAt: now},
		},
		{
			name: "Root user without referrer",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userFields).
					AddRow(1, nil, "REF1", "Root", nil, now)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, ReferralCode: "REF1", FirstName: "Root", CreatedAt: now},
		},
		{
			name: "User does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByReferrerID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM users WHERE referrer_id = $1 ORDER BY id")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.User
	}{
		{
			name: "Direct referrals found",
			mockSetup: func() {
				rows := pgxmock.NewRows(userFields).
					AddRow(2, intPtr(1), "REF2", "Anna", nil, now).
					AddRow(3, intPtr(1), "REF3", "Boris", nil, now)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: []domain.User{
				{ID: 2, ReferrerID: intPtr(1), ReferralCode: "REF2", FirstName: "Anna", CreatedAt: now},
				{ID: 3, ReferrerID: intPtr(1), ReferralCode: "REF3", FirstName: "Boris", CreatedAt: now},
			},
		},
		{
			name: "No referrals",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows(userFields))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Iteration error",
			mockSetup: func() {
				rows := pgxmock.NewRows(userFields).
					AddRow(2, intPtr(1), "REF2", "Anna", nil, now).
					RowError(0, errors.New("broken row"))
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByReferrerID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByReferrerIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Empty input skips the query", func(t *testing.T) {
		result, err := repo.FindByReferrerIDs(context.Background(), nil)
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Whole depth in one query", func(t *testing.T) {
		rows := pgxmock.NewRows(userFields).
			AddRow(4, intPtr(2), "REF4", "Vera", nil, now).
			AddRow(5, intPtr(3), "REF5", "Gleb", nil, now)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE referrer_id = ANY($1)")).
			WithArgs([]int{2, 3}).
			WillReturnRows(rows)

		result, err := repo.FindByReferrerIDs(context.Background(), []int{2, 3})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, 4, result[0].ID)
		assert.Equal(t, 3, *result[1].ReferrerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CountDirectReferrals(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE referrer_id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int
	}{
		{
			name: "Counted",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
			},
			result: 7,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CountDirectReferrals(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ListIDs(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id FROM users WHERE id > $1 ORDER BY id LIMIT $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []int
	}{
		{
			name: "Page of ids",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10, 3).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11).AddRow(12).AddRow(15))
			},
			result: []int{11, 12, 15},
		},
		{
			name: "Past the last page",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10, 3).WillReturnRows(pgxmock.NewRows([]string{"id"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10, 3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListIDs(context.Background(), 10, 3)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
