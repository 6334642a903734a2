package stadium

import (
	"net/url"
	"sort"
)

const searchBaseURL = "https://www.google.com/search?q="

type Stadium struct {
	TeamID   int
	Name     string
	Lat      float64
	Lon      float64
	Capacity int
}

// stadiums is compiled reference data keyed by upstream team id. It
// includes clubs promoted for 2025-26 and clubs relegated in 2024-25.
var stadiums = map[int]Stadium{
	40: {Name: "Anfield", Lat: 53.4308, Lon: -2.9609, Capacity: 61276},
	42: {Name: "Emirates Stadium", Lat: 51.5549, Lon: -0.1084, Capacity: 60704},
	50: {Name: "Etihad Stadium", Lat: 53.4831, Lon: -2.2004, Capacity: 55097},
	49: {Name: "Stamford Bridge", Lat: 51.4816, Lon: -0.1909, Capacity: 40341},
	33: {Name: "Old Trafford", Lat: 53.4631, Lon: -2.2913, Capacity: 75653},
	34: {Name: "St James' Park", Lat: 54.9756, Lon: -1.6217, Capacity: 52305},
	47: {Name: "Tottenham Hotspur Stadium", Lat: 51.6043, Lon: -0.0663, Capacity: 62062},
	66: {Name: "Villa Park", Lat: 52.5092, Lon: -1.8846, Capacity: 42657},
	65: {Name: "City Ground", Lat: 52.9399, Lon: -1.1322, Capacity: 30602},
	51: {Name: "Amex Stadium", Lat: 50.8616, Lon: -0.0834, Capacity: 31800},
	35: {Name: "Vitality Stadium", Lat: 50.7352, Lon: -1.8384, Capacity: 11364},
	36: {Name: "Craven Cottage", Lat: 51.4749, Lon: -0.2217, Capacity: 25700},
	55: {Name: "Gtech Community Stadium", Lat: 51.4907, Lon: -0.2886, Capacity: 17250},
	52: {Name: "Selhurst Park", Lat: 51.3983, Lon: -0.0855, Capacity: 25486},
	45: {Name: "Hill Dickinson Stadium", Lat: 53.4388, Lon: -2.9663, Capacity: 52769},
	48: {Name: "London Stadium", Lat: 51.5387, Lon: -0.0166, Capacity: 62500},
	39: {Name: "Molineux", Lat: 52.5902, Lon: -2.1306, Capacity: 31750},
	63: {Name: "Elland Road", Lat: 53.7778, Lon: -1.5722, Capacity: 37890},
	44: {Name: "Turf Moor", Lat: 53.7890, Lon: -2.2302, Capacity: 21944},
	71: {Name: "Stadium of Light", Lat: 54.9146, Lon: -1.3882, Capacity: 49000},
	46: {Name: "King Power Stadium", Lat: 52.6204, Lon: -1.1422, Capacity: 32312},
	57: {Name: "Portman Road", Lat: 52.0545, Lon: 1.1447, Capacity: 29673},
	41: {Name: "St Mary's Stadium", Lat: 50.9058, Lon: -1.3910, Capacity: 32384},
}

func Lookup(teamID int) (Stadium, bool) {
	s, ok := stadiums[teamID]
	if !ok {
		return Stadium{}, false
	}
	s.TeamID = teamID
	return s, true
}

// All returns the table ordered by team id.
func All() []Stadium {
	out := make([]Stadium, 0, len(stadiums))
	for id := range stadiums {
		s, _ := Lookup(id)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}

// SearchURL links a name to a premierleague.com web search.
func SearchURL(name string) string {
	return searchBaseURL + url.QueryEscape(name+" site:premierleague.com")
}
