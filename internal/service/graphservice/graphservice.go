package graphservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

//go:generate mockgen -source=graphservice.go -destination=mock_graphservice.go -package=graphservice

type Directory interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByReferrerID(ctx context.Context, referrerID int) ([]domain.User, error)
	FindByReferrerIDs(ctx context.Context, referrerIDs []int) ([]domain.User, error)
}

type IntegrityReporter interface {
	ReportIntegrity(err error)
}

var ErrSubtreeTruncated = errors.New("descendant subtree truncated at node limit")

type Service struct {
	directory Directory
	reporter  IntegrityReporter
	maxNodes  int
}

func New(directory Directory, reporter IntegrityReporter, maxNodes int) *Service {
	return &Service{
		directory: directory,
		reporter:  reporter,
		maxNodes:  maxNodes,
	}
}

// AncestorChain walks referrer links upward from userID and returns at most
// maxLevels ancestors, nearest first. On a cycle or a dangling referrer id it
// returns the chain collected so far together with a *domain.IntegrityError.
func (s *Service) AncestorChain(ctx context.Context, userID, maxLevels int) ([]domain.User, error) {
	start, err := s.directory.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	if start == nil {
		return nil, nil
	}

	visited := map[int]struct{}{start.ID: {}}
	chain := make([]domain.User, 0, maxLevels)
	current := start

	for len(chain) < maxLevels && current.ReferrerID != nil {
		refID := *current.ReferrerID
		if _, seen := visited[refID]; seen {
			return chain, s.report(&domain.IntegrityError{Kind: domain.IntegrityCycle, UserID: current.ID, RefID: refID})
		}
		visited[refID] = struct{}{}

		referrer, err := s.directory.FindByID(ctx, refID)
		if err != nil {
			return chain, fmt.Errorf("load referrer %d: %w", refID, err)
		}
		if referrer == nil {
			return chain, s.report(&domain.IntegrityError{Kind: domain.IntegrityOrphan, UserID: current.ID, RefID: refID})
		}
		chain = append(chain, *referrer)
		current = referrer
	}
	return chain, nil
}

// DescendantSubtree returns the downline of userID breadth first, one
// directory query per depth, down to maxDepth levels. A user reached twice is
// reported as a cycle and its branch is not expanded again.
func (s *Service) DescendantSubtree(ctx context.Context, userID, maxDepth int) ([]domain.NetworkNode, error) {
	visited := map[int]struct{}{userID: {}}
	var (
		nodes     []domain.NetworkNode
		integrity error
	)

	frontier := []int{userID}
	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		children, err := s.directory.FindByReferrerIDs(ctx, frontier)
		if err != nil {
			return nodes, fmt.Errorf("load depth %d under user %d: %w", depth, userID, err)
		}

		next := make([]int, 0, len(children))
		for _, child := range children {
			if _, seen := visited[child.ID]; seen {
				integrity = errors.Join(integrity, s.report(&domain.IntegrityError{
					Kind:   domain.IntegrityCycle,
					UserID: *child.ReferrerID,
					RefID:  child.ID,
				}))
				continue
			}
			if s.maxNodes > 0 && len(nodes) >= s.maxNodes {
				zap.L().Warn("descendant subtree truncated",
					zap.Int("userID", userID),
					zap.Int("maxNodes", s.maxNodes),
					zap.Int("depth", depth),
				)
				return nodes, errors.Join(integrity, ErrSubtreeTruncated)
			}
			visited[child.ID] = struct{}{}
			nodes = append(nodes, domain.NetworkNode{User: child, Depth: depth, ParentID: *child.ReferrerID})
			next = append(next, child.ID)
		}
		frontier = next
	}
	return nodes, integrity
}

func (s *Service) DirectReferrals(ctx context.Context, userID int) ([]domain.User, error) {
	users, err := s.directory.FindByReferrerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load direct referrals of %d: %w", userID, err)
	}
	return users, nil
}

func (s *Service) report(err *domain.IntegrityError) error {
	if s.reporter != nil {
		s.reporter.ReportIntegrity(err)
	}
	return err
}

// Partial reports whether err only marks an incomplete traversal, a cycle, an
// orphan or a truncated subtree, so the returned nodes are still usable.
func Partial(err error) bool {
	if err == nil {
		return false
	}
	var ie *domain.IntegrityError
	return errors.As(err, &ie) || errors.Is(err, ErrSubtreeTruncated)
}
