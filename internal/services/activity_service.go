package services

import (
	"context"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DaysPerMonth is the approximate month length used when trimming the calendar
const DaysPerMonth = 30

type ContributionsFetcher interface {
	FetchContributions(ctx context.Context) (*models.ContributionData, error)
}

type ProfileFetcher interface {
	FetchProfile(ctx context.Context) (*models.GithubProfile, error)
}

// ActivityService assembles the GitHub activity widget
type ActivityService struct {
	contributions ContributionsFetcher
	profiles      ProfileFetcher
	now           func() time.Time
}

func NewActivityService(contributions ContributionsFetcher, profiles ProfileFetcher) *ActivityService {
	return &ActivityService{
		contributions: contributions,
		profiles:      profiles,
		now:           time.Now,
	}
}

// Load fetches contributions and profile concurrently. A contributions failure
// marks the summary unavailable; a profile failure only zeroes followers.
func (s *ActivityService) Load(ctx context.Context, viewport models.ViewportClass) *models.ActivitySummary {
	var (
		data    *models.ContributionData
		profile *models.GithubProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.contributions.FetchContributions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.profiles.FetchProfile(gctx)
		if err != nil {
			logger.WithError(err).Warn("GitHub profile unavailable, followers set to zero")
			profile = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("GitHub contributions unavailable")
		return &models.ActivitySummary{Available: false}
	}

	now := s.now()
	summary := &models.ActivitySummary{
		Available:          true,
		TotalContributions: data.LastYear(),
		Streak:             ComputeStreak(data.Contributions, now),
		ActiveYear:         now.Year(),
		Days:               SelectDisplayWindow(data.Contributions, viewport),
	}
	if profile != nil {
		summary.Followers = profile.Followers
	}
	return summary
}

// ComputeStreak counts consecutive days with contributions, walking back from
// the most recent day of a chronologically ordered list. A zero count on
// today's UTC date is skipped since the day is not over; any other zero day
// ends the streak.
func ComputeStreak(days []models.ContributionDay, now time.Time) int {
	today := now.UTC().Format("2006-01-02")

	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		if day.Count > 0 {
			streak++
			continue
		}
		if day.Date != today {
			break
		}
	}
	return streak
}

// ClassifyViewport buckets a viewport width in CSS pixels. Zero or negative
// widths mean the width is unknown and are treated as wide.
func ClassifyViewport(width int) models.ViewportClass {
	switch {
	case width <= 0:
		return models.ViewportWide
	case width <= 400:
		return models.ViewportNarrow
	case width <= 640:
		return models.ViewportMedium
	default:
		return models.ViewportWide
	}
}

// SelectDisplayWindow keeps the most recent months*30 days for narrow and
// medium viewports and returns the list unmodified otherwise. Order is preserved.
func SelectDisplayWindow(days []models.ContributionDay, viewport models.ViewportClass) []models.ContributionDay {
	months := viewport.MonthsToShow()
	if months == 0 {
		return days
	}

	limit := months * DaysPerMonth
	if len(days) <= limit {
		return days
	}
	return days[len(days)-limit:]
}

// BuildCalendarWeeks arranges chronologically ordered days into Sunday-first
// week columns. Days with unparseable dates are skipped.
func BuildCalendarWeeks(days []models.ContributionDay) []models.CalendarWeek {
	var (
		weeks   []models.CalendarWeek
		current models.CalendarWeek
		started bool
	)

	for i := range days {
		date, err := time.Parse("2006-01-02", days[i].Date)
		if err != nil {
			continue
		}
		weekday := int(date.Weekday())
		if started && weekday == int(time.Sunday) {
			weeks = append(weeks, current)
			current = models.CalendarWeek{}
		}
		current.Days[weekday] = &days[i]
		started = true
	}

	if started {
		weeks = append(weeks, current)
	}
	return weeks
}
