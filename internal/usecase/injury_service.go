package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
)

// InjuryItem is an injury report with its derived severity and, when
// curated, the expected return date ("2006-01-02").
type InjuryItem struct {
	injury.Entry
	Severity       injury.Severity
	ExpectedReturn string
	HasReturn      bool
}

type InjuryGroup struct {
	Team  team.Ref
	Items []InjuryItem
}

// InjuryReport is the league injury list, grouped per club. Teams lists
// every club with a recent report regardless of the active filter, so the
// filter selector stays populated.
type InjuryReport struct {
	Groups []InjuryGroup
	Teams  []team.Ref
	Total  int
}

type InjuryService struct {
	source injury.Source
	now    func() time.Time
}

func NewInjuryService(source injury.Source) *InjuryService {
	return &InjuryService{source: source, now: time.Now}
}

// League returns recent injuries across the league, one entry per player,
// filtered by teamFilter ("all", empty, or a team id).
func (s *InjuryService) League(ctx context.Context, teamFilter string) (InjuryReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryService.League")
	defer span.End()

	teamFilter = strings.TrimSpace(teamFilter)
	if err := validateTeamFilter(teamFilter); err != nil {
		return InjuryReport{}, err
	}

	items, err := s.source.ListByLeague(ctx)
	if err != nil {
		return InjuryReport{}, fmt.Errorf("list league injuries: %w", err)
	}

	recent := injury.Recent(items, s.now())
	filtered := injury.FilterTeam(recent, teamFilter)

	report := InjuryReport{
		Teams: injuryTeams(recent),
		Total: len(filtered),
	}
	for _, group := range injury.GroupByTeam(filtered) {
		out := InjuryGroup{Team: group.Team, Items: make([]InjuryItem, 0, len(group.Entries))}
		for _, e := range group.Entries {
			out.Items = append(out.Items, DescribeInjury(e))
		}
		report.Groups = append(report.Groups, out)
	}
	if report.Groups == nil {
		report.Groups = []InjuryGroup{}
	}
	return report, nil
}

// DescribeInjury derives severity and the curated return date for e.
func DescribeInjury(e injury.Entry) InjuryItem {
	item := InjuryItem{Entry: e, Severity: injury.Classify(e.Reason)}
	item.ExpectedReturn, item.HasReturn = injury.ExpectedReturn(e.Player.Name)
	return item
}

func injuryTeams(items []injury.Entry) []team.Ref {
	seen := make(map[int]struct{}, len(items))
	out := make([]team.Ref, 0)
	for _, e := range items {
		if _, ok := seen[e.Team.ID]; ok {
			continue
		}
		seen[e.Team.ID] = struct{}{}
		out = append(out, e.Team)
	}
	return out
}

func validateTeamFilter(filter string) error {
	if filter == "" || strings.EqualFold(filter, injury.FilterAll) {
		return nil
	}
	id, err := strconv.Atoi(filter)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: team filter must be \"all\" or a team id, got %q", ErrInvalidInput, filter)
	}
	return nil
}
