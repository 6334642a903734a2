package apifootball

import (
	"fmt"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// upstreamErrors holds the provider's "errors" field, which is an empty
// array on success and an object (or occasionally an array) of messages
// on failure.
type upstreamErrors []string

func (e *upstreamErrors) UnmarshalJSON(data []byte) error {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*e = nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, errorText(item))
		}
		*e = out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(v))
		for _, key := range keys {
			out = append(out, errorText(v[key]))
		}
		*e = out
	default:
		*e = upstreamErrors{errorText(v)}
	}
	return nil
}

// Join concatenates the non-empty messages.
func (e upstreamErrors) Join(sep string) string {
	parts := make([]string, 0, len(e))
	for _, msg := range e {
		if msg = strings.TrimSpace(msg); msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, sep)
}

func errorText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type teamJSON struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type standingsResponse struct {
	League struct {
		ID        int             `json:"id"`
		Season    int             `json:"season"`
		Standings [][]standingRow `json:"standings"`
	} `json:"league"`
}

type standingRow struct {
	Rank        int      `json:"rank"`
	Team        teamJSON `json:"team"`
	Points      int      `json:"points"`
	GoalsDiff   int      `json:"goalsDiff"`
	Form        string   `json:"form"`
	Description string   `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

type fixtureItem struct {
	Fixture struct {
		ID     int    `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short   string `json:"short"`
			Long    string `json:"long"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
		Venue struct {
			Name string `json:"name"`
		} `json:"venue"`
	} `json:"fixture"`
	League struct {
		Round string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home teamJSON `json:"home"`
		Away teamJSON `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type squadResponse struct {
	Team    teamJSON `json:"team"`
	Players []struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Age      int    `json:"age"`
		Number   *int   `json:"number"`
		Position string `json:"position"`
		Photo    string `json:"photo"`
	} `json:"players"`
}

type playerStatItem struct {
	Player struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Photo       string `json:"photo"`
		Nationality string `json:"nationality"`
	} `json:"player"`
	Statistics []struct {
		Team  teamJSON `json:"team"`
		Games struct {
			Appearences *int `json:"appearences"`
			Minutes     *int `json:"minutes"`
		} `json:"games"`
		Goals struct {
			Total   *int `json:"total"`
			Assists *int `json:"assists"`
		} `json:"goals"`
	} `json:"statistics"`
}

type injuryItem struct {
	Player struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Photo  string `json:"photo"`
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"player"`
	Team    teamJSON `json:"team"`
	Fixture struct {
		ID   int    `json:"id"`
		Date string `json:"date"`
	} `json:"fixture"`
}

type transferItem struct {
	Player struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Update    string `json:"update"`
	Transfers []struct {
		Date  string  `json:"date"`
		Type  *string `json:"type"`
		Teams struct {
			In  teamJSON `json:"in"`
			Out teamJSON `json:"out"`
		} `json:"teams"`
	} `json:"transfers"`
}

type coachItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
	Career      []struct {
		Team  teamJSON `json:"team"`
		Start *string  `json:"start"`
		End   *string  `json:"end"`
	} `json:"career"`
}

type teamInfoItem struct {
	Team struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Code    string `json:"code"`
		Country string `json:"country"`
		Founded int    `json:"founded"`
		Logo    string `json:"logo"`
	} `json:"team"`
	Venue struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		Capacity int    `json:"capacity"`
	} `json:"venue"`
}

type lineupPlayerJSON struct {
	Player struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Number *int   `json:"number"`
		Pos    string `json:"pos"`
		Grid   string `json:"grid"`
	} `json:"player"`
}

type lineupItem struct {
	Team  teamJSON `json:"team"`
	Coach struct {
		Name string `json:"name"`
	} `json:"coach"`
	Formation   string             `json:"formation"`
	StartXI     []lineupPlayerJSON `json:"startXI"`
	Substitutes []lineupPlayerJSON `json:"substitutes"`
}

type personJSON struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type eventItem struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team   teamJSON   `json:"team"`
	Player personJSON `json:"player"`
	Assist personJSON `json:"assist"`
	Type   string     `json:"type"`
	Detail string     `json:"detail"`
}
