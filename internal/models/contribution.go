package models

// ContributionDay is one cell of the contribution calendar
type ContributionDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"` // 0-4
}

// ContributionData mirrors the contributions API response. Total is keyed by
// year plus the special "lastYear" key.
type ContributionData struct {
	Total         map[string]int    `json:"total"`
	Contributions []ContributionDay `json:"contributions"`
}

// LastYear returns the rolling one-year contribution total
func (d *ContributionData) LastYear() int {
	if d == nil || d.Total == nil {
		return 0
	}
	return d.Total["lastYear"]
}

// ViewportClass is the coarse width bucket the activity calendar is rendered for
type ViewportClass string

const (
	ViewportNarrow ViewportClass = "narrow" // <= 400px
	ViewportMedium ViewportClass = "medium" // 401-640px
	ViewportWide   ViewportClass = "wide"   // > 640px
)

// MonthsToShow returns how many approximate months of days fit the viewport;
// zero means unrestricted.
func (v ViewportClass) MonthsToShow() int {
	switch v {
	case ViewportNarrow:
		return 5
	case ViewportMedium:
		return 8
	default:
		return 0
	}
}

// ActivitySummary is what the GitHub activity widget renders
type ActivitySummary struct {
	Available          bool
	TotalContributions int
	Streak             int
	ActiveYear         int
	Followers          int
	Days               []ContributionDay
}

// CalendarWeek is one column of the calendar, Sunday first. Nil entries pad
// the first and last week.
type CalendarWeek struct {
	Days [7]*ContributionDay
}
