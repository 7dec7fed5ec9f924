package formatter

// AppRow is one app in the today section of a usage report.
type AppRow struct {
	App     string  `json:"app"`
	Icon    string  `json:"icon,omitempty"`
	Minutes float64 `json:"minutes"`
	Limit   *int    `json:"limit"`
	Percent int     `json:"percent"`
	Blocked bool    `json:"blocked"`
}

// DayRow is one calendar day in the weekly section of a usage report.
type DayRow struct {
	Date         string             `json:"date"`
	TotalMinutes float64            `json:"totalMinutes"`
	SavedMinutes float64            `json:"savedMinutes"`
	AppUsage     map[string]float64 `json:"appUsage,omitempty"`
}

// Report is the assembled usage report handed to a formatter.
type Report struct {
	Today      []AppRow `json:"today"`
	Week       []DayRow `json:"week"`
	TotalSaved float64  `json:"totalSavedMinutes"`
	Streak     int      `json:"streakDays"`
}

// Formatter renders a report to stdout.
type Formatter interface {
	Format(report Report) error
}
