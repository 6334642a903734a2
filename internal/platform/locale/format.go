package locale

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/message"
)

// x/text carries no CLDR date patterns, so month and weekday names for the
// three UI languages are tabled here.
var (
	shortMonths = map[Language][12]string{
		English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Spanish: {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	}
	shortWeekdays = map[Language][7]string{
		English: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Korean:  {"일", "월", "화", "수", "목", "금", "토"},
		Spanish: {"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	}
	daysLabels = map[Language]string{
		English: "days",
		Korean:  "일",
		Spanish: "días",
	}
)

// Formatter renders instants in one timezone and language.
type Formatter struct {
	loc  *time.Location
	zone string
	lang Language
}

func NewFormatter(zoneID string, lang Language) (Formatter, error) {
	loc, err := LoadZone(zoneID)
	if err != nil {
		return Formatter{}, err
	}
	if !lang.Valid() {
		lang = DefaultLanguage
	}
	return Formatter{loc: loc, zone: loc.String(), lang: lang}, nil
}

func (f Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

func (f Formatter) Zone() string {
	if f.zone == "" {
		return DefaultZone
	}
	return f.zone
}

func (f Formatter) Language() Language {
	if f.lang == "" {
		return DefaultLanguage
	}
	return f.lang
}

// Abbreviation is the zone abbreviation in effect at t.
func (f Formatter) Abbreviation(t time.Time) string {
	return Abbreviation(f.Location(), t)
}

// Date renders day, short month and year: "10 Feb 2026", "2026년 2월 10일", "10 feb 2026".
func (f Formatter) Date(t time.Time) string {
	t = t.In(f.Location())
	if f.Language() == Korean {
		return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), f.month(t.Month()), t.Year())
}

// DayMonth renders the fixture card date: "10 Feb", "2월 10일", "10 feb".
func (f Formatter) DayMonth(t time.Time) string {
	t = t.In(f.Location())
	if f.Language() == Korean {
		return fmt.Sprintf("%d월 %d일", int(t.Month()), t.Day())
	}
	return fmt.Sprintf("%d %s", t.Day(), f.month(t.Month()))
}

// Time renders a 24-hour clock time: "15:00".
func (f Formatter) Time(t time.Time) string {
	return t.In(f.Location()).Format("15:04")
}

// Clock renders the home page clock with seconds and the zone abbreviation.
func (f Formatter) Clock(t time.Time) string {
	local := t.In(f.Location())
	weekday := shortWeekdays[f.Language()][local.Weekday()]
	return fmt.Sprintf("%s, %s %s %s", weekday, f.Date(local), local.Format("15:04:05"), f.Abbreviation(local))
}

// DaysSuffix renders the countdown fragment " (~5days)".
func (f Formatter) DaysSuffix(days int) string {
	return fmt.Sprintf(" (~%d%s)", days, daysLabels[f.Language()])
}

// Integer groups digits per locale: 61,276 / 61,276 / 61.276.
func (f Formatter) Integer(n int) string {
	return message.NewPrinter(f.Language().Tag()).Sprintf("%d", n)
}

func (f Formatter) month(m time.Month) string {
	names, ok := shortMonths[f.Language()]
	if !ok {
		names = shortMonths[English]
	}
	return names[m-1]
}

// DaysUntil is ceil((target - now) / 24h).
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}
