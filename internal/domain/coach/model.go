package coach

import (
	"context"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

const fallbackCount = 3

// Span is one club stint. End is nil while the stint is ongoing.
type Span struct {
	Team  team.Ref
	Start *time.Time
	End   *time.Time
}

type Coach struct {
	ID          int
	Name        string
	FirstName   string
	LastName    string
	Age         *int
	Nationality string
	Photo       string
	Career      []Span
}

// CurrentAt reports whether c has an open stint at teamID.
func (c Coach) CurrentAt(teamID int) bool {
	for _, span := range c.Career {
		if span.Team.ID == teamID && span.End == nil {
			return true
		}
	}
	return false
}

// Current returns coaches with an open stint at teamID. When none match,
// the first three coaches are returned as they came.
func Current(coaches []Coach, teamID int) []Coach {
	out := make([]Coach, 0, len(coaches))
	for _, c := range coaches {
		if c.CurrentAt(teamID) {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}
	return append(out, coaches[:min(fallbackCount, len(coaches))]...)
}

// Source reads the coaches linked to a club.
type Source interface {
	ListByTeam(ctx context.Context, teamID int) ([]Coach, error)
}
