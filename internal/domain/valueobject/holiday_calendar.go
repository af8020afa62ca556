package valueobject

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hubmanager/backend/internal/domain/entity"
)

// PresetIDPrefix marks identifiers of synthetic, non persisted holidays.
const PresetIDPrefix = "preset-"

// PresetHoliday is a statically defined holiday.
type PresetHoliday struct {
	ID   string
	Date string
	Name string
	Type entity.HolidayType
}

// CityToken maps a substring of a hub name to a calendar location.
type CityToken struct {
	Token    string
	Location string
}

// HolidayCalendar holds the static national and per location holiday tables of one year.
// It is built once at startup and never mutated; accessors return copies.
type HolidayCalendar struct {
	year            int
	national        []PresetHoliday
	regional        map[string][]PresetHoliday
	tokens          []CityToken
	defaultLocation string
}

// NewHolidayCalendar builds a calendar, copying every input table.
func NewHolidayCalendar(year int, national []PresetHoliday, regional map[string][]PresetHoliday, tokens []CityToken, defaultLocation string) *HolidayCalendar {
	c := &HolidayCalendar{
		year:            year,
		national:        withPresetIDs("nacional", national),
		regional:        make(map[string][]PresetHoliday, len(regional)),
		tokens:          append([]CityToken(nil), tokens...),
		defaultLocation: defaultLocation,
	}
	for location, holidays := range regional {
		c.regional[location] = withPresetIDs(location, holidays)
	}
	return c
}

func withPresetIDs(scope string, holidays []PresetHoliday) []PresetHoliday {
	out := make([]PresetHoliday, len(holidays))
	for i, h := range holidays {
		h.ID = PresetIDPrefix + scope + "-" + h.Date
		out[i] = h
	}
	return out
}

// Year returns the year the tables were authored for.
func (c *HolidayCalendar) Year() int {
	return c.year
}

// ResolveLocation returns the location of the first candidate containing a known city token.
// Matching ignores case and accents. Falls back to the default location.
func (c *HolidayCalendar) ResolveLocation(candidates ...string) string {
	for _, candidate := range candidates {
		folded := FoldText(candidate)
		if folded == "" {
			continue
		}
		for _, t := range c.tokens {
			if strings.Contains(folded, t.Token) {
				return t.Location
			}
		}
	}
	return c.defaultLocation
}

// Presets returns the national plus location holidays for year, sorted by date.
// Returns nil when year is not the authored year.
func (c *HolidayCalendar) Presets(year int, location string) []PresetHoliday {
	if year != c.year {
		return nil
	}
	out := make([]PresetHoliday, 0, len(c.national)+len(c.regional[location]))
	out = append(out, c.national...)
	out = append(out, c.regional[location]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// IsPresetID reports whether id identifies a preset holiday.
func IsPresetID(id string) bool {
	return strings.HasPrefix(id, PresetIDPrefix)
}

// FoldText lower-cases s and strips diacritics so "Cáceres" matches "caceres".
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// SpanishHolidayCalendar returns the 2026 calendar for the cities where hubs operate.
func SpanishHolidayCalendar() *HolidayCalendar {
	national := []PresetHoliday{
		{Date: "2026-01-01", Name: "Año Nuevo", Type: entity.HolidayNacional},
		{Date: "2026-01-06", Name: "Epifanía del Señor", Type: entity.HolidayNacional},
		{Date: "2026-04-02", Name: "Jueves Santo", Type: entity.HolidayNacional},
		{Date: "2026-04-03", Name: "Viernes Santo", Type: entity.HolidayNacional},
		{Date: "2026-05-01", Name: "Fiesta del Trabajo", Type: entity.HolidayNacional},
		{Date: "2026-08-15", Name: "Asunción de la Virgen", Type: entity.HolidayNacional},
		{Date: "2026-10-12", Name: "Fiesta Nacional de España", Type: entity.HolidayNacional},
		{Date: "2026-11-01", Name: "Todos los Santos", Type: entity.HolidayNacional},
		{Date: "2026-12-06", Name: "Día de la Constitución", Type: entity.HolidayNacional},
		{Date: "2026-12-08", Name: "Inmaculada Concepción", Type: entity.HolidayNacional},
		{Date: "2026-12-25", Name: "Navidad", Type: entity.HolidayNacional},
	}

	regional := map[string][]PresetHoliday{
		"madrid": {
			{Date: "2026-05-02", Name: "Día de la Comunidad de Madrid", Type: entity.HolidayAutonomico},
			{Date: "2026-12-07", Name: "Lunes siguiente al Día de la Constitución", Type: entity.HolidayAutonomico},
			{Date: "2026-05-15", Name: "San Isidro", Type: entity.HolidayLocal},
			{Date: "2026-11-09", Name: "Nuestra Señora de la Almudena", Type: entity.HolidayLocal},
		},
		"caceres": {
			{Date: "2026-09-08", Name: "Día de Extremadura", Type: entity.HolidayAutonomico},
			{Date: "2026-12-07", Name: "Lunes siguiente al Día de la Constitución", Type: entity.HolidayAutonomico},
			{Date: "2026-04-23", Name: "San Jorge", Type: entity.HolidayLocal},
			{Date: "2026-05-11", Name: "Virgen de la Montaña", Type: entity.HolidayLocal},
		},
		"cordoba": {
			{Date: "2026-02-28", Name: "Día de Andalucía", Type: entity.HolidayAutonomico},
			{Date: "2026-12-07", Name: "Lunes siguiente al Día de la Constitución", Type: entity.HolidayAutonomico},
			{Date: "2026-09-08", Name: "Virgen de la Fuensanta", Type: entity.HolidayLocal},
			{Date: "2026-10-24", Name: "San Rafael", Type: entity.HolidayLocal},
		},
		"cartagena": {
			{Date: "2026-06-09", Name: "Día de la Región de Murcia", Type: entity.HolidayAutonomico},
			{Date: "2026-03-19", Name: "San José", Type: entity.HolidayAutonomico},
			{Date: "2026-03-27", Name: "Viernes de Dolores", Type: entity.HolidayLocal},
			{Date: "2026-09-25", Name: "Fiestas de Carthagineses y Romanos", Type: entity.HolidayLocal},
		},
		"cadiz": {
			{Date: "2026-02-28", Name: "Día de Andalucía", Type: entity.HolidayAutonomico},
			{Date: "2026-12-07", Name: "Lunes siguiente al Día de la Constitución", Type: entity.HolidayAutonomico},
			{Date: "2026-02-16", Name: "Lunes de Carnaval", Type: entity.HolidayLocal},
			{Date: "2026-10-07", Name: "Virgen del Rosario", Type: entity.HolidayLocal},
		},
	}

	tokens := []CityToken{
		{Token: "toledo", Location: "madrid"},
		{Token: "dibecesa", Location: "madrid"},
		{Token: "madrid", Location: "madrid"},
		{Token: "caceres", Location: "caceres"},
		{Token: "cordoba", Location: "cordoba"},
		{Token: "cartagena", Location: "cartagena"},
		{Token: "cadiz", Location: "cadiz"},
	}

	return NewHolidayCalendar(2026, national, regional, tokens, "madrid")
}
