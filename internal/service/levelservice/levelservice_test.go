package levelservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/graphservice"
)

type mocks struct {
	levels    *MockLevelRepo
	directory *MockDirectory
	status    *MockStatusRepo
	earnings  *MockEarningsRepo
	volume    *MockVolumeService
}

func NewMock(t *testing.T, opts Options) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		levels:    NewMockLevelRepo(ctrl),
		directory: NewMockDirectory(ctrl),
		status:    NewMockStatusRepo(ctrl),
		earnings:  NewMockEarningsRepo(ctrl),
		volume:    NewMockVolumeService(ctrl),
	}
	return New(m.levels, m.directory, m.status, m.earnings, m.volume, opts), m
}

var table = []domain.MlmLevel{
	{Level: 1, Name: "Новичок", RequiredReferrals: 0, RequiredVolume: 0},
	{Level: 2, Name: "Стартер", RequiredReferrals: 1, RequiredVolume: 50},
	{Level: 3, Name: "Активист", RequiredReferrals: 2, RequiredVolume: 150},
	{Level: 4, Name: "Лидер", RequiredReferrals: 3, RequiredVolume: 300},
	{Level: 5, Name: "Наставник", RequiredReferrals: 5, RequiredVolume: 500},
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		metric        domain.LevelMetric
		value         int
		wantLevel     int
		wantNext      int
		wantRemaining int
		wantProgress  int
	}{
		{name: "nothing yet", metric: domain.MetricReferrals, value: 0, wantLevel: 1, wantNext: 2, wantRemaining: 1, wantProgress: 0},
		{name: "exact threshold", metric: domain.MetricReferrals, value: 3, wantLevel: 4, wantNext: 5, wantRemaining: 2, wantProgress: 60},
		{name: "between thresholds", metric: domain.MetricReferrals, value: 4, wantLevel: 4, wantNext: 5, wantRemaining: 1, wantProgress: 80},
		{name: "top level", metric: domain.MetricReferrals, value: 40, wantLevel: 5, wantProgress: 100},
		{name: "volume metric", metric: domain.MetricVolume, value: 200, wantLevel: 3, wantNext: 4, wantRemaining: 100, wantProgress: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(table, tt.metric, tt.value)

			assert.Equal(t, tt.wantLevel, got.CurrentLevel.Level)
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
			assert.Equal(t, tt.wantProgress, got.Progress)
			if tt.wantNext == 0 {
				assert.Nil(t, got.NextLevel)
			} else {
				require.NotNil(t, got.NextLevel)
				assert.Equal(t, tt.wantNext, got.NextLevel.Level)
			}
		})
	}
}

func TestEvaluate_EmptyTable(t *testing.T) {
	got := Evaluate(nil, domain.MetricReferrals, 10)
	assert.Equal(t, 1, got.CurrentLevel.Level)
	assert.Nil(t, got.NextLevel)
}

func TestClassify(t *testing.T) {
	t.Run("referral metric", func(t *testing.T) {
		service, m := NewMock(t, Options{})
		m.levels.EXPECT().ListLevels(gomock.Any()).Return(table, nil)
		m.directory.EXPECT().CountDirectReferrals(gomock.Any(), 7).Return(2, nil)

		got, err := service.Classify(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 7, got.UserID)
		assert.Equal(t, domain.MetricReferrals, got.Metric)
		assert.Equal(t, 3, got.CurrentLevel.Level)
	})

	t.Run("volume metric tolerates truncated downline", func(t *testing.T) {
		service, m := NewMock(t, Options{Metric: domain.MetricVolume, MaxDepth: 16})
		m.levels.EXPECT().ListLevels(gomock.Any()).Return(table, nil)
		m.volume.EXPECT().GroupVolume(gomock.Any(), 7, 16, nil).Return(domain.Volume{PV: 320}, graphservice.ErrSubtreeTruncated)

		got, err := service.Classify(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 4, got.CurrentLevel.Level)
	})

	t.Run("unknown metric", func(t *testing.T) {
		service, m := NewMock(t, Options{Metric: "karma"})
		m.levels.EXPECT().ListLevels(gomock.Any()).Return(table, nil)

		_, err := service.Classify(context.Background(), 7)
		assert.ErrorIs(t, err, ErrUnknownMetric)
	})

	t.Run("levels unavailable", func(t *testing.T) {
		service, m := NewMock(t, Options{})
		m.levels.EXPECT().ListLevels(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := service.Classify(context.Background(), 7)
		assert.Error(t, err)
	})
}

func TestRecalculate(t *testing.T) {
	service, m := NewMock(t, Options{})
	earned := decimal.RequireFromString("260.00")

	m.levels.EXPECT().ListLevels(gomock.Any()).Return(table, nil)
	m.directory.EXPECT().CountDirectReferrals(gomock.Any(), 7).Return(5, nil)
	m.earnings.EXPECT().SumEarnings(gomock.Any(), 7).Return(earned, nil)
	m.status.EXPECT().UpsertMlmStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.MlmStatus) (*domain.MlmStatus, error) {
		assert.Equal(t, 7, s.UserID)
		assert.Equal(t, 5, s.CurrentLevel)
		assert.Equal(t, 5, s.TotalReferrals)
		assert.True(t, s.TotalEarnings.Equal(earned))
		return s, nil
	})

	status, err := service.Recalculate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, status.CurrentLevel)
}

func TestRecalculateAll(t *testing.T) {
	service, m := NewMock(t, Options{BatchSize: 2})

	m.directory.EXPECT().ListIDs(gomock.Any(), 0, 2).Return([]int{1, 2}, nil)
	m.directory.EXPECT().ListIDs(gomock.Any(), 2, 2).Return([]int{3}, nil)
	m.directory.EXPECT().ListIDs(gomock.Any(), 3, 2).Return(nil, nil)

	m.levels.EXPECT().ListLevels(gomock.Any()).Return(table, nil).Times(3)
	m.directory.EXPECT().CountDirectReferrals(gomock.Any(), 1).Return(0, nil)
	m.directory.EXPECT().CountDirectReferrals(gomock.Any(), 2).Return(0, errors.New("db down"))
	m.directory.EXPECT().CountDirectReferrals(gomock.Any(), 3).Return(1, nil)
	m.earnings.EXPECT().SumEarnings(gomock.Any(), gomock.Any()).Return(decimal.Zero, nil).Times(2)
	m.status.EXPECT().UpsertMlmStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.MlmStatus) (*domain.MlmStatus, error) {
		return s, nil
	}).Times(2)

	updated, err := service.RecalculateAll(context.Background())
	assert.Equal(t, 2, updated)
	assert.Error(t, err)
}
