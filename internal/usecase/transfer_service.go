package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

const defaultTransferWorkers = 4

type TransferQuery struct {
	Direction string
	Team      string
}

// TransferWindows is the league transfer list split by window. Teams are
// the reference clubs; FailedTeams counts clubs whose history could not be
// fetched and which therefore contribute nothing.
type TransferWindows struct {
	Season      transfer.Season
	Windows     transfer.Partition
	Teams       []team.Ref
	Total       int
	FailedTeams int
}

type TransferServiceConfig struct {
	Season     transfer.Season
	MaxWorkers int
}

type TransferService struct {
	standings standing.Source
	transfers transfer.Source
	season    transfer.Season
	workers   int
	logger    *logging.Logger
}

func NewTransferService(
	standings standing.Source,
	transfers transfer.Source,
	cfg TransferServiceConfig,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}
	season := cfg.Season
	if season.FirstYear == 0 {
		season = transfer.DefaultSeason()
	}
	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = defaultTransferWorkers
	}
	return &TransferService{
		standings: standings,
		transfers: transfers,
		season:    season,
		workers:   workers,
		logger:    logger,
	}
}

// List fetches every standings club's transfer history on a bounded pool,
// then sorts, filters and partitions the flattened records.
func (s *TransferService) List(ctx context.Context, query TransferQuery) (TransferWindows, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.List")
	defer span.End()

	filter, err := normalizeTransferQuery(query)
	if err != nil {
		return TransferWindows{}, err
	}

	rows, err := s.standings.List(ctx)
	if err != nil {
		return TransferWindows{}, fmt.Errorf("list standings: %w", err)
	}
	teams := standing.Teams(rows)

	perTeam, failed, err := s.fetchAll(ctx, teams)
	if err != nil {
		return TransferWindows{}, err
	}

	records := make([]transfer.Record, 0)
	for i, ref := range teams {
		records = append(records, transfer.Expand(ref, perTeam[i], s.season)...)
	}
	transfer.SortNewestFirst(records)
	records = filter.Apply(records)

	return TransferWindows{
		Season:      s.season,
		Windows:     transfer.PartitionByWindow(records, s.season),
		Teams:       teams,
		Total:       len(records),
		FailedTeams: failed,
	}, nil
}

// fetchAll returns histories indexed like teams. A failing team is logged
// and left empty; a cancelled ctx fails the whole call.
func (s *TransferService) fetchAll(ctx context.Context, teams []team.Ref) ([][]transfer.History, int, error) {
	out := make([][]transfer.History, len(teams))
	if len(teams) == 0 {
		return out, 0, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(teams)))
	if err != nil {
		return nil, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		failed  int
	)
	for i, ref := range teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			histories, err := s.transfers.ListByTeam(ctx, ref.ID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.WarnContext(ctx, "skip team transfers", "team_id", ref.ID, "team", ref.Name, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			out[i] = histories
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, 0, fmt.Errorf("submit transfer fetch to worker pool: %w", err)
		}
	}
	workers.Wait()
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("fetch transfers: %w", err)
	}
	return out, failed, nil
}

func normalizeTransferQuery(query TransferQuery) (transfer.Filter, error) {
	direction := strings.ToLower(strings.TrimSpace(query.Direction))
	switch direction {
	case "", transfer.FilterAll, string(transfer.DirectionIn), string(transfer.DirectionOut):
	default:
		return transfer.Filter{}, fmt.Errorf("%w: direction must be all, in or out, got %q", ErrInvalidInput, query.Direction)
	}

	teamFilter := strings.TrimSpace(query.Team)
	if err := validateTeamFilter(teamFilter); err != nil {
		return transfer.Filter{}, err
	}
	return transfer.Filter{Direction: direction, Team: teamFilter}, nil
}
