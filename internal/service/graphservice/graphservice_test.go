package graphservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

func NewMock(t *testing.T, maxNodes int) (*Service, *MockDirectory, *MockIntegrityReporter) {
	ctrl := gomock.NewController(t)
	directory := NewMockDirectory(ctrl)
	reporter := NewMockIntegrityReporter(ctrl)
	return New(directory, reporter, maxNodes), directory, reporter
}

func ref(id int) *int { return &id }

// serve answers directory lookups from users, keyed by id.
func serve(directory *MockDirectory, users map[int]domain.User) {
	directory.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id int) (*domain.User, error) {
		u, ok := users[id]
		if !ok {
			return nil, nil
		}
		return &u, nil
	}).AnyTimes()
	directory.EXPECT().FindByReferrerIDs(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ids []int) ([]domain.User, error) {
		var out []domain.User
		for _, id := range ids {
			for uid := 1; uid <= len(users)+10; uid++ {
				u, ok := users[uid]
				if ok && u.ReferrerID != nil && *u.ReferrerID == id {
					out = append(out, u)
				}
			}
		}
		return out, nil
	}).AnyTimes()
}

func ids(users []domain.User) []int {
	out := make([]int, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestAncestorChain(t *testing.T) {
	// 5 -> 4 -> 3 -> 2 -> 1
	line := map[int]domain.User{
		1: {ID: 1},
		2: {ID: 2, ReferrerID: ref(1)},
		3: {ID: 3, ReferrerID: ref(2)},
		4: {ID: 4, ReferrerID: ref(3)},
		5: {ID: 5, ReferrerID: ref(4)},
	}

	tests := []struct {
		name      string
		users     map[int]domain.User
		userID    int
		maxLevels int
		wantIDs   []int
		wantKind  domain.IntegrityKind
	}{
		{name: "nearest first up to the limit", users: line, userID: 5, maxLevels: 3, wantIDs: []int{4, 3, 2}},
		{name: "chain shorter than limit", users: line, userID: 3, maxLevels: 3, wantIDs: []int{2, 1}},
		{name: "root has no ancestors", users: line, userID: 1, maxLevels: 3, wantIDs: []int{}},
		{name: "unknown user", users: line, userID: 99, maxLevels: 3, wantIDs: nil},
		{
			name: "cycle stops the walk",
			users: map[int]domain.User{
				1: {ID: 1, ReferrerID: ref(3)},
				2: {ID: 2, ReferrerID: ref(1)},
				3: {ID: 3, ReferrerID: ref(2)},
			},
			userID:    3,
			maxLevels: 10,
			wantIDs:   []int{2, 1},
			wantKind:  domain.IntegrityCycle,
		},
		{
			name:      "self referral",
			users:     map[int]domain.User{1: {ID: 1, ReferrerID: ref(1)}},
			userID:    1,
			maxLevels: 3,
			wantIDs:   []int{},
			wantKind:  domain.IntegrityCycle,
		},
		{
			name: "orphaned referrer",
			users: map[int]domain.User{
				2: {ID: 2, ReferrerID: ref(7)},
				3: {ID: 3, ReferrerID: ref(2)},
			},
			userID:    3,
			maxLevels: 3,
			wantIDs:   []int{2},
			wantKind:  domain.IntegrityOrphan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, directory, reporter := NewMock(t, 0)
			serve(directory, tt.users)
			if tt.wantKind != "" {
				reporter.EXPECT().ReportIntegrity(gomock.Any()).Times(1)
			}

			chain, err := service.AncestorChain(context.Background(), tt.userID, tt.maxLevels)
			if tt.wantKind != "" {
				var ie *domain.IntegrityError
				require.ErrorAs(t, err, &ie)
				assert.Equal(t, tt.wantKind, ie.Kind)
				assert.True(t, Partial(err))
			} else {
				require.NoError(t, err)
			}
			if tt.wantIDs == nil {
				assert.Nil(t, chain)
				return
			}
			assert.Equal(t, tt.wantIDs, ids(chain))
		})
	}
}

func TestAncestorChain_LookupError(t *testing.T) {
	service, directory, _ := NewMock(t, 0)
	directory.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, ReferrerID: ref(2)}, nil)
	directory.EXPECT().FindByID(gomock.Any(), 2).Return(nil, errors.New("db down"))

	chain, err := service.AncestorChain(context.Background(), 3, 3)
	assert.Error(t, err)
	assert.False(t, Partial(err))
	assert.Empty(t, chain)
}

func TestDescendantSubtree(t *testing.T) {
	//        1
	//      /   \
	//     2     3
	//    / \     \
	//   4   5     6
	//   |
	//   7
	tree := map[int]domain.User{
		1: {ID: 1},
		2: {ID: 2, ReferrerID: ref(1)},
		3: {ID: 3, ReferrerID: ref(1)},
		4: {ID: 4, ReferrerID: ref(2)},
		5: {ID: 5, ReferrerID: ref(2)},
		6: {ID: 6, ReferrerID: ref(3)},
		7: {ID: 7, ReferrerID: ref(4)},
	}

	t.Run("full depth", func(t *testing.T) {
		service, directory, _ := NewMock(t, 0)
		serve(directory, tree)

		nodes, err := service.DescendantSubtree(context.Background(), 1, 16)
		require.NoError(t, err)
		require.Len(t, nodes, 6)

		depths := map[int]int{}
		for _, n := range nodes {
			depths[n.User.ID] = n.Depth
		}
		assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 3}, depths)
	})

	t.Run("depth limited", func(t *testing.T) {
		service, directory, _ := NewMock(t, 0)
		serve(directory, tree)

		nodes, err := service.DescendantSubtree(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Len(t, nodes, 5)
	})

	t.Run("leaf", func(t *testing.T) {
		service, directory, _ := NewMock(t, 0)
		serve(directory, tree)

		nodes, err := service.DescendantSubtree(context.Background(), 7, 16)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("truncated", func(t *testing.T) {
		service, directory, _ := NewMock(t, 3)
		serve(directory, tree)

		nodes, err := service.DescendantSubtree(context.Background(), 1, 16)
		assert.ErrorIs(t, err, ErrSubtreeTruncated)
		assert.True(t, Partial(err))
		assert.Len(t, nodes, 3)
	})

	t.Run("cycle terminates", func(t *testing.T) {
		service, directory, reporter := NewMock(t, 0)
		cyclic := map[int]domain.User{
			1: {ID: 1, ReferrerID: ref(3)},
			2: {ID: 2, ReferrerID: ref(1)},
			3: {ID: 3, ReferrerID: ref(2)},
		}
		serve(directory, cyclic)
		reporter.EXPECT().ReportIntegrity(gomock.Any()).Times(1)

		nodes, err := service.DescendantSubtree(context.Background(), 1, 16)
		var ie *domain.IntegrityError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, domain.IntegrityCycle, ie.Kind)
		assert.Equal(t, []int{2, 3}, []int{nodes[0].User.ID, nodes[1].User.ID})
	})

	t.Run("lookup error", func(t *testing.T) {
		service, directory, _ := NewMock(t, 0)
		directory.EXPECT().FindByReferrerIDs(gomock.Any(), []int{1}).Return(nil, errors.New("db down"))

		_, err := service.DescendantSubtree(context.Background(), 1, 16)
		assert.Error(t, err)
		assert.False(t, Partial(err))
	})
}

func TestDirectReferrals(t *testing.T) {
	service, directory, _ := NewMock(t, 0)
	directory.EXPECT().FindByReferrerID(gomock.Any(), 1).Return([]domain.User{{ID: 2}, {ID: 3}}, nil)

	users, err := service.DirectReferrals(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(users))

	directory.EXPECT().FindByReferrerID(gomock.Any(), 1).Return(nil, errors.New("db down"))
	_, err = service.DirectReferrals(context.Background(), 1)
	assert.Error(t, err)
}

func TestPartial(t *testing.T) {
	assert.False(t, Partial(nil))
	assert.False(t, Partial(errors.New("db down")))
	assert.True(t, Partial(ErrSubtreeTruncated))
	assert.True(t, Partial(&domain.IntegrityError{Kind: domain.IntegrityOrphan}))
}
