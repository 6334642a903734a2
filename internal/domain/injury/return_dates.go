package injury

import (
	"fmt"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/platform/locale"
)

const (
	returnDateLayout = "2006-01-02"
	countdownDays    = 7
)

// expectedReturns maps a player's display name to a hand-curated expected
// return date (Transfermarkt, 2026-02-09). Keys match exactly, so spelling
// variants are listed separately. An empty date means unknown.
var expectedReturns = map[string]string{
	"Caleb Wiley": "",
	"Julio Soler": "",
	"Jérémy Doku": "",
	"Jeremy Doku": "",
	"Granit Xhaka": "",
	"Bertrand Traoré": "",
	"Bertrand Traore": "",
	"Harrison Jones": "",
	"Jocelin Ta Bi": "",
	"Lukasz Fabianski": "",
	"Daniel James": "",
	"Matai Akinmboni": "",
	"Mikel Merino": "",
	"Chris Wood": "",
	"John Victor": "",
	"Nicolò Savona": "",
	"Nicola Savona": "",
	"Fabian Schär": "",
	"Fabian Schar": "",
	"Emil Krafth": "",
	"Matthijs de Ligt": "",
	"Rio Cardines": "",
	"Caleb Kporha": "",
	"Tom Cairney": "",
	"Lucas Bergvall": "",
	"Jeremie Frimpong": "",
	"Connor Roberts": "",
	"Ben Davies": "",
	"Mike Tresor": "",
	"Jordan Beyer": "",
	"John Stones": "",
	"Justin Devenny": "2026-02-10",
	"Martin Ødegaard": "2026-02-10",
	"Martin Odegaard": "2026-02-10",
	"Tosin Adarabioyo": "2026-02-13",
	"Yasin Ayari": "2026-02-13",
	"Mats Wieffer": "2026-02-13",
	"Savinho": "2026-02-15",
	"Tyler Adams": "2026-02-16",
	"Alysson": "2026-02-20",
	"Andrés García": "2026-02-20",
	"Andres Garcia": "2026-02-20",
	"Jan Paul van Hecke": "2026-02-20",
	"Max Dowman": "2026-02-20",
	"Ben Gannon-Doak": "2026-02-21",
	"Josh Dasilva": "2026-02-21",
	"Saša Lukić": "2026-02-21",
	"Sasa Lukic": "2026-02-21",
	"Marcus Tavernier": "2026-02-23",
	"Bukayo Saka": "2026-02-23",
	"Jean-Philippe Mateta": "2026-02-25",
	"Solly March": "2026-02-27",
	"Richarlison": "2026-02-28",
	"Pedro Porro": "2026-02-28",
	"Dário Essugo": "2026-03-01",
	"Dario Essugo": "2026-03-01",
	"Eddie Nketiah": "2026-03-01",
	"Dejan Kulusevski": "2026-03-09",
	"Tino Livramento": "2026-03-11",
	"Valentino Livramento": "2026-03-11",
	"Mateo Kovacic": "2026-03-14",
	"Jamie Gittens": "2026-03-20",
	"Alexander Isak": "2026-04-01",
	"Zeki Amdouni": "2026-04-01",
	"Stefan Bajcetic": "2026-04-01",
	"Patrick Dorgu": "2026-04-05",
	"Rodrigo Bentancur": "2026-04-07",
	"John McGinn": "2026-04-10",
	"Mohammed Kudus": "2026-04-10",
	"Justin Kluivert": "2026-04-11",
	"Youri Tielemans": "2026-04-17",
	"Cheick Doucouré": "2026-05-01",
	"Cheick Doucoure": "2026-05-01",
	"Conor Bradley": "2026-05-31",
	"James Maddison": "2026-06-01",
	"Jack Grealish": "2026-06-01",
	"Adam Webster": "2026-06-01",
	"Boubacar Kamara": "2026-06-01",
	"Levi Colwill": "2026-06-01",
	"Josko Gvardiol": "2026-06-17",
	"Antoni Milambo": "2026-07-31",
	"Fábio Carvalho": "2026-08-31",
	"Fabio Carvalho": "2026-08-31",
	"Giovanni Leoni": "2026-09-01",
	"Josh Cullen": "2026-09-01",
	"Stefanos Tzimas": "2026-09-01",
}

// ExpectedReturn looks up name by exact match. Unknown players and players
// with no curated date both report ok=false.
func ExpectedReturn(name string) (string, bool) {
	date, ok := expectedReturns[name]
	if !ok || date == "" {
		return "", false
	}
	return date, true
}

// FormatReturn renders a curated return date in f's language. The date is
// taken as midnight in f's zone. Within a week a "~N days" suffix is added.
func FormatReturn(date string, now time.Time, f locale.Formatter) (string, error) {
	at, err := time.ParseInLocation(returnDateLayout, date, f.Location())
	if err != nil {
		return "", fmt.Errorf("parse return date %q: %w", date, err)
	}

	out := f.Date(at)
	if days := locale.DaysUntil(at, now); days >= 0 && days <= countdownDays {
		out += f.DaysSuffix(days)
	}
	return out, nil
}
