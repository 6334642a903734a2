package httpapi

import (
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/coach"
	"github.com/riskibarqy/pl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/matchdetail"
	"github.com/riskibarqy/pl-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/pl-dashboard/internal/domain/squad"
	"github.com/riskibarqy/pl-dashboard/internal/domain/stadium"
	"github.com/riskibarqy/pl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/pl-dashboard/internal/domain/team"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

const tableFormLength = 5

type teamRefDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type standingRowDTO struct {
	Rank         int        `json:"rank"`
	Team         teamRefDTO `json:"team"`
	Points       int        `json:"points"`
	Played       int        `json:"played"`
	Won          int        `json:"won"`
	Draw         int        `json:"draw"`
	Lost         int        `json:"lost"`
	GoalsFor     int        `json:"goalsFor"`
	GoalsAgainst int        `json:"goalsAgainst"`
	GoalDiff     int        `json:"goalDiff"`
	Form         string     `json:"form"`
	Zone         string     `json:"zone,omitempty"`
	Description  string     `json:"description,omitempty"`
}

type fixtureSideDTO struct {
	Team   teamRefDTO `json:"team"`
	Goals  *int       `json:"goals"`
	Winner *bool      `json:"winner"`
}

type fixtureDTO struct {
	ID           int            `json:"id"`
	Kickoff      string         `json:"kickoff"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Abbreviation string         `json:"abbreviation"`
	Status       string         `json:"status"`
	StatusLong   string         `json:"statusLong,omitempty"`
	Elapsed      *int           `json:"elapsed,omitempty"`
	Round        string         `json:"round,omitempty"`
	Venue        string         `json:"venue,omitempty"`
	Home         fixtureSideDTO `json:"home"`
	Away         fixtureSideDTO `json:"away"`
	Outcome      string         `json:"outcome,omitempty"`
}

// fixtureListDTO carries an explicit empty flag so the view can render its
// "no data" state without inspecting the slice.
type fixtureListDTO struct {
	Items []fixtureDTO `json:"items"`
	Empty bool         `json:"empty"`
}

type clockDTO struct {
	Now          string `json:"now"`
	Display      string `json:"display"`
	Timezone     string `json:"timezone"`
	Abbreviation string `json:"abbreviation"`
}

type homeDTO struct {
	View      viewDTO          `json:"view"`
	Clock     clockDTO         `json:"clock"`
	Standings []standingRowDTO `json:"standings"`
	Upcoming  fixtureListDTO   `json:"upcoming"`
}

type teamInfoDTO struct {
	teamRefDTO
	Code    string `json:"code,omitempty"`
	Country string `json:"country,omitempty"`
	Founded int    `json:"founded,omitempty"`
	Venue   string `json:"venue,omitempty"`
	City    string `json:"city,omitempty"`
}

type fitnessDTO struct {
	Injured bool   `json:"injured"`
	Label   string `json:"label"`
}

type squadPlayerDTO struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Number      *int       `json:"number"`
	Age         int        `json:"age,omitempty"`
	Photo       string     `json:"photo,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
	Fitness     fitnessDTO `json:"fitness"`
}

type squadSectionDTO struct {
	Position string           `json:"position"`
	Players  []squadPlayerDTO `json:"players"`
}

type stadiumDTO struct {
	Name            string  `json:"name"`
	Capacity        int     `json:"capacity"`
	CapacityDisplay string  `json:"capacityDisplay"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	SearchURL       string  `json:"searchUrl"`
}

type teamFixturesDTO struct {
	Past     fixtureListDTO `json:"past"`
	Upcoming fixtureListDTO `json:"upcoming"`
}

type teamPageDTO struct {
	View     viewDTO           `json:"view"`
	Team     teamInfoDTO       `json:"team"`
	Standing standingRowDTO    `json:"standing"`
	Form     string            `json:"form"`
	Fixtures teamFixturesDTO   `json:"fixtures"`
	Squad    []squadSectionDTO `json:"squad"`
	Injuries []injuryDTO       `json:"injuries"`
	Stadium  *stadiumDTO       `json:"stadium,omitempty"`
}

type playerRefDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

type injuryDTO struct {
	Player         playerRefDTO `json:"player"`
	Team           teamRefDTO   `json:"team"`
	Reason         string       `json:"reason"`
	Type           string       `json:"type,omitempty"`
	Severity       string       `json:"severity"`
	FixtureDate    string       `json:"fixtureDate"`
	ExpectedReturn string       `json:"expectedReturn,omitempty"`
	ReturnKnown    bool         `json:"returnKnown"`
}

type injuryGroupDTO struct {
	Team  teamRefDTO  `json:"team"`
	Items []injuryDTO `json:"items"`
}

type injuryReportDTO struct {
	View   viewDTO          `json:"view"`
	Filter string           `json:"filter"`
	Total  int              `json:"total"`
	Teams  []teamRefDTO     `json:"teams"`
	Groups []injuryGroupDTO `json:"groups"`
}

type transferDTO struct {
	Player    playerRefDTO `json:"player"`
	Date      string       `json:"date"`
	DateISO   string       `json:"dateIso"`
	Type      string       `json:"type"`
	From      teamRefDTO   `json:"from"`
	To        teamRefDTO   `json:"to"`
	Direction string       `json:"direction"`
	Team      teamRefDTO   `json:"team"`
}

type transferListDTO struct {
	Items []transferDTO `json:"items"`
	Empty bool          `json:"empty"`
}

type transferWindowsDTO struct {
	View        viewDTO         `json:"view"`
	Season      int             `json:"season"`
	Direction   string          `json:"direction"`
	Team        string          `json:"team"`
	Total       int             `json:"total"`
	FailedTeams int             `json:"failedTeams"`
	Teams       []teamRefDTO    `json:"teams"`
	Winter      transferListDTO `json:"winter"`
	Summer      transferListDTO `json:"summer"`
	Other       transferListDTO `json:"other"`
}

type leaderDTO struct {
	Rank        int          `json:"rank"`
	Player      playerRefDTO `json:"player"`
	Nationality string       `json:"nationality,omitempty"`
	Team        teamRefDTO   `json:"team"`
	Appearances int          `json:"appearances"`
	Minutes     int          `json:"minutes"`
	Goals       int          `json:"goals"`
	Assists     int          `json:"assists"`
}

type coachDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Since       string `json:"since,omitempty"`
}

type weatherDTO struct {
	Temperature int     `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Condition   string  `json:"condition"`
	Description string  `json:"description,omitempty"`
}

type currentWeatherDTO struct {
	Stadium   stadiumDTO  `json:"stadium"`
	Available bool        `json:"available"`
	Current   *weatherDTO `json:"current,omitempty"`
}

type forecastDayDTO struct {
	Date string `json:"date"`
	weatherDTO
}

type forecastDTO struct {
	Stadium   stadiumDTO       `json:"stadium"`
	Available bool             `json:"available"`
	Days      []forecastDayDTO `json:"days"`
}

type lineupPlayerDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Number   *int   `json:"number"`
	Position string `json:"position,omitempty"`
	Grid     string `json:"grid,omitempty"`
}

type lineupDTO struct {
	Team        teamRefDTO        `json:"team"`
	Formation   string            `json:"formation,omitempty"`
	Coach       string            `json:"coach,omitempty"`
	StartXI     []lineupPlayerDTO `json:"startXI"`
	Substitutes []lineupPlayerDTO `json:"substitutes"`
}

type matchEventDTO struct {
	Minute string     `json:"minute"`
	Team   teamRefDTO `json:"team"`
	Player string     `json:"player,omitempty"`
	Assist string     `json:"assist,omitempty"`
	Type   string     `json:"type"`
	Detail string     `json:"detail,omitempty"`
}

type matchDetailDTO struct {
	FixtureID int             `json:"fixtureId"`
	Available bool            `json:"available"`
	Lineups   []lineupDTO     `json:"lineups"`
	Events    []matchEventDTO `json:"events"`
}

func teamRefToDTO(v team.Ref) teamRefDTO {
	return teamRefDTO{ID: v.ID, Name: v.Name, Logo: v.Logo}
}

func teamRefsToDTO(items []team.Ref) []teamRefDTO {
	out := make([]teamRefDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamRefToDTO(item))
	}
	return out
}

func standingRowToDTO(row standing.Row, formLength int) standingRowDTO {
	return standingRowDTO{
		Rank:         row.Rank,
		Team:         teamRefToDTO(row.Team),
		Points:       row.Points,
		Played:       row.Played,
		Won:          row.Won,
		Draw:         row.Draw,
		Lost:         row.Lost,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		GoalDiff:     row.GoalDiff,
		Form:         standing.FormTail(row.Form, formLength),
		Zone:         string(standing.ZoneFor(row.Rank)),
		Description:  row.Description,
	}
}

func standingsToDTO(rows []standing.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowToDTO(row, tableFormLength))
	}
	return out
}

func fixtureToDTO(v view, f fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:           f.ID,
		Kickoff:      f.Kickoff.In(v.format.Location()).Format(time.RFC3339),
		Date:         v.format.DayMonth(f.Kickoff),
		Time:         v.format.Time(f.Kickoff),
		Abbreviation: v.format.Abbreviation(f.Kickoff),
		Status:       f.StatusShort,
		StatusLong:   f.StatusLong,
		Elapsed:      f.Elapsed,
		Round:        f.Round,
		Venue:        f.Venue,
		Home:         fixtureSideDTO{Team: teamRefToDTO(f.Home.Team), Goals: f.Home.Goals, Winner: f.Home.Winner},
		Away:         fixtureSideDTO{Team: teamRefToDTO(f.Away.Team), Goals: f.Away.Goals, Winner: f.Away.Winner},
	}
}

// fixtureListToDTO renders items; a positive teamID adds the W/D/L outcome
// from that team's side.
func fixtureListToDTO(v view, items []fixture.Fixture, teamID int) fixtureListDTO {
	out := fixtureListDTO{Items: make([]fixtureDTO, 0, len(items)), Empty: len(items) == 0}
	for _, f := range items {
		item := fixtureToDTO(v, f)
		if teamID > 0 {
			if outcome, ok := f.OutcomeFor(teamID); ok {
				item.Outcome = string(outcome)
			}
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func clockToDTO(v view, now time.Time) clockDTO {
	f := v.homeZone
	return clockDTO{
		Now:          now.In(f.Location()).Format(time.RFC3339),
		Display:      f.Clock(now),
		Timezone:     f.Zone(),
		Abbreviation: f.Abbreviation(now),
	}
}

func teamInfoToDTO(ref team.Ref, info team.Info, hasInfo bool) teamInfoDTO {
	out := teamInfoDTO{teamRefDTO: teamRefToDTO(ref)}
	if !hasInfo {
		return out
	}
	if out.Logo == "" {
		out.Logo = info.Team.Logo
	}
	out.Code = info.Code
	out.Country = info.Country
	out.Founded = info.Founded
	out.Venue = info.Venue.Name
	out.City = info.Venue.City
	return out
}

func squadToDTO(sections []squad.Section) []squadSectionDTO {
	out := make([]squadSectionDTO, 0, len(sections))
	for _, section := range sections {
		players := make([]squadPlayerDTO, 0, len(section.Members))
		for _, m := range section.Members {
			players = append(players, squadPlayerDTO{
				ID:          m.Player.ID,
				Name:        m.Player.Name,
				Number:      m.Player.Number,
				Age:         m.Player.Age,
				Photo:       m.Player.Photo,
				Nationality: m.Player.Nationality,
				Fitness:     fitnessDTO{Injured: m.Fitness.Injured, Label: m.Fitness.Label},
			})
		}
		out = append(out, squadSectionDTO{Position: section.Position, Players: players})
	}
	return out
}

func stadiumToDTO(v view, s stadium.Stadium) stadiumDTO {
	return stadiumDTO{
		Name:            s.Name,
		Capacity:        s.Capacity,
		CapacityDisplay: v.format.Integer(s.Capacity),
		Lat:             s.Lat,
		Lon:             s.Lon,
		SearchURL:       stadium.SearchURL(s.Name),
	}
}

func injuryItemToDTO(v view, item usecase.InjuryItem) injuryDTO {
	out := injuryDTO{
		Player:      playerRefDTO{ID: item.Player.ID, Name: item.Player.Name, Photo: item.Player.Photo},
		Team:        teamRefToDTO(item.Team),
		Reason:      item.Reason,
		Type:        item.Type,
		Severity:    string(item.Severity),
		FixtureDate: v.format.Date(item.FixtureDate),
	}
	if item.HasReturn {
		if formatted, err := injury.FormatReturn(item.ExpectedReturn, v.now, v.format); err == nil {
			out.ExpectedReturn = formatted
			out.ReturnKnown = true
		}
	}
	return out
}

func injuryEntriesToDTO(v view, entries []injury.Entry) []injuryDTO {
	out := make([]injuryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, injuryItemToDTO(v, usecase.DescribeInjury(e)))
	}
	return out
}

func injuryReportToDTO(v view, report usecase.InjuryReport, filter string) injuryReportDTO {
	out := injuryReportDTO{
		View:   v.dto(),
		Filter: filter,
		Total:  report.Total,
		Teams:  teamRefsToDTO(report.Teams),
		Groups: make([]injuryGroupDTO, 0, len(report.Groups)),
	}
	for _, g := range report.Groups {
		items := make([]injuryDTO, 0, len(g.Items))
		for _, item := range g.Items {
			items = append(items, injuryItemToDTO(v, item))
		}
		out.Groups = append(out.Groups, injuryGroupDTO{Team: teamRefToDTO(g.Team), Items: items})
	}
	return out
}

func transferListToDTO(v view, records []transfer.Record) transferListDTO {
	out := transferListDTO{Items: make([]transferDTO, 0, len(records)), Empty: len(records) == 0}
	for _, r := range records {
		item := transferDTO{
			Player:    playerRefDTO{ID: r.Player.ID, Name: r.Player.Name},
			Type:      r.Type,
			From:      teamRefToDTO(r.From),
			To:        teamRefToDTO(r.To),
			Direction: string(r.Direction),
			Team:      teamRefToDTO(r.Team),
		}
		if !r.Date.IsZero() {
			item.Date = v.format.Date(r.Date)
			item.DateISO = r.Date.Format("2006-01-02")
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func leadersToDTO(items []playerstats.Ranked) []leaderDTO {
	out := make([]leaderDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leaderDTO{
			Rank:        item.Rank,
			Player:      playerRefDTO{ID: item.Player.ID, Name: item.Player.Name, Photo: item.Player.Photo},
			Nationality: item.Player.Nationality,
			Team:        teamRefToDTO(item.Team),
			Appearances: item.Appearances,
			Minutes:     item.Minutes,
			Goals:       item.Goals,
			Assists:     item.Assists,
		})
	}
	return out
}

func coachesToDTO(v view, items []coach.Coach, teamID int) []coachDTO {
	out := make([]coachDTO, 0, len(items))
	for _, c := range items {
		item := coachDTO{
			ID:          c.ID,
			Name:        c.Name,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			Age:         c.Age,
			Nationality: c.Nationality,
			Photo:       c.Photo,
		}
		for _, span := range c.Career {
			if span.Team.ID == teamID && span.End == nil && span.Start != nil {
				item.Since = v.format.Date(*span.Start)
				break
			}
		}
		out = append(out, item)
	}
	return out
}

func snapshotToDTO(s weather.Snapshot) weatherDTO {
	return weatherDTO{
		Temperature: s.RoundedTemperature(),
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
		Condition:   string(s.Condition()),
		Description: s.Description,
	}
}

func currentWeatherToDTO(v view, w usecase.StadiumWeather) currentWeatherDTO {
	out := currentWeatherDTO{Stadium: stadiumToDTO(v, w.Stadium), Available: w.Available}
	if w.Available {
		current := snapshotToDTO(w.Current)
		out.Current = &current
	}
	return out
}

func forecastToDTO(v view, f usecase.StadiumForecast) forecastDTO {
	out := forecastDTO{
		Stadium:   stadiumToDTO(v, f.Stadium),
		Available: f.Available,
		Days:      make([]forecastDayDTO, 0, len(f.Days)),
	}
	for _, day := range f.Days {
		out.Days = append(out.Days, forecastDayDTO{
			Date:       v.format.DayMonth(day.At),
			weatherDTO: snapshotToDTO(day.Snapshot),
		})
	}
	return out
}

func lineupPlayersToDTO(items []matchdetail.LineupPlayer) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, lineupPlayerDTO{ID: p.ID, Name: p.Name, Number: p.Number, Position: p.Position, Grid: p.Grid})
	}
	return out
}

func matchDetailToDTO(fixtureID int, detail matchdetail.Detail, available bool) matchDetailDTO {
	out := matchDetailDTO{
		FixtureID: fixtureID,
		Available: available,
		Lineups:   make([]lineupDTO, 0, len(detail.Lineups)),
		Events:    make([]matchEventDTO, 0, len(detail.Events)),
	}
	for _, l := range detail.Lineups {
		out.Lineups = append(out.Lineups, lineupDTO{
			Team:        teamRefToDTO(l.Team),
			Formation:   l.Formation,
			Coach:       l.Coach,
			StartXI:     lineupPlayersToDTO(l.StartXI),
			Substitutes: lineupPlayersToDTO(l.Substitutes),
		})
	}
	for _, e := range detail.Events {
		out.Events = append(out.Events, matchEventDTO{
			Minute: e.Minute(),
			Team:   teamRefToDTO(e.Team),
			Player: e.Player.Name,
			Assist: e.Assist.Name,
			Type:   e.Type,
			Detail: e.Detail,
		})
	}
	return out
}
