package domain

import "fmt"

type IntegrityKind string

const (
	IntegrityCycle  IntegrityKind = "cycle"
	IntegrityOrphan IntegrityKind = "orphan"
)

// IntegrityError reports a referrer graph that is not a forest: a user
// reached twice during one traversal, or a referrer id pointing nowhere.
type IntegrityError struct {
	Kind   IntegrityKind
	UserID int
	// RefID is the revisited user for a cycle, the missing referrer for an orphan.
	RefID int
}

func (e *IntegrityError) Error() string {
	switch e.Kind {
	case IntegrityCycle:
		return fmt.Sprintf("referrer cycle: user %d leads back to user %d", e.UserID, e.RefID)
	case IntegrityOrphan:
		return fmt.Sprintf("orphaned referrer: user %d points to missing user %d", e.UserID, e.RefID)
	default:
		return fmt.Sprintf("referrer graph integrity error at user %d", e.UserID)
	}
}
