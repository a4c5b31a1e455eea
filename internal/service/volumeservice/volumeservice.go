package volumeservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/graphservice"
)

//go:generate mockgen -source=volumeservice.go -destination=mock_volumeservice.go -package=volumeservice

type OrderRepo interface {
	SumPaid(ctx context.Context, userIDs []int, window *domain.TimeWindow) (domain.Volume, error)
}

type Graph interface {
	DescendantSubtree(ctx context.Context, userID, maxDepth int) ([]domain.NetworkNode, error)
}

type Service struct {
	orderRepo OrderRepo
	graph     Graph
}

func New(orderRepo OrderRepo, graph Graph) *Service {
	return &Service{
		orderRepo: orderRepo,
		graph:     graph,
	}
}

func (s *Service) PersonalVolume(ctx context.Context, userID int, window *domain.TimeWindow) (domain.Volume, error) {
	volume, err := s.orderRepo.SumPaid(ctx, []int{userID}, window)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("personal volume of %d: %w", userID, err)
	}
	return volume, nil
}

// GroupVolume sums paid orders over the whole downline of userID, the user's
// own orders excluded. A partial subtree is still summed and its error returned.
func (s *Service) GroupVolume(ctx context.Context, userID, maxDepth int, window *domain.TimeWindow) (domain.Volume, error) {
	nodes, err := s.graph.DescendantSubtree(ctx, userID, maxDepth)
	if err != nil && !graphservice.Partial(err) {
		return domain.Volume{}, fmt.Errorf("group volume of %d: %w", userID, err)
	}
	return s.SubtreeVolume(ctx, nodes, window, err)
}

// SubtreeVolume sums paid orders for an already loaded downline. walkErr is
// the traversal error to pass through when the sum itself succeeds.
func (s *Service) SubtreeVolume(ctx context.Context, nodes []domain.NetworkNode, window *domain.TimeWindow, walkErr error) (domain.Volume, error) {
	if len(nodes) == 0 {
		return domain.Volume{Amount: decimal.Zero}, walkErr
	}
	ids := make([]int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.User.ID
	}
	volume, err := s.orderRepo.SumPaid(ctx, ids, window)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("sum downline volume: %w", err)
	}
	return volume, walkErr
}
