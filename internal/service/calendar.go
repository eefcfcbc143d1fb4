package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/credits"
)

// PeriodResolver turns a wall-clock date into a trimester index. The
// classifier itself never looks at the clock; everything date-related is
// resolved here at the call boundary.
type PeriodResolver struct {
	mu     sync.RWMutex
	starts []monthDay // one per period, in school-year order; starts[0] opens the year
}

type monthDay struct {
	month time.Month
	day   int
}

func NewPeriodResolver(cfg *config.CalendarConfig) (*PeriodResolver, error) {
	starts, err := parsePeriodStarts(cfg.PeriodStarts)
	if err != nil {
		return nil, err
	}
	return &PeriodResolver{starts: starts}, nil
}

// Reload swaps in new period boundaries, for config hot-reload.
func (r *PeriodResolver) Reload(cfg *config.CalendarConfig) error {
	starts, err := parsePeriodStarts(cfg.PeriodStarts)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.starts = starts
	r.mu.Unlock()
	return nil
}

func parsePeriodStarts(raw []string) ([]monthDay, error) {
	if len(raw) != credits.PeriodsPerYear {
		return nil, fmt.Errorf("calendar: expected %d period starts, got %d",
			credits.PeriodsPerYear, len(raw))
	}

	var starts []monthDay
	for _, s := range raw {
		parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("calendar: bad period start %q, want MM-DD", s)
		}
		month, err := strconv.Atoi(parts[0])
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("calendar: bad month in period start %q", s)
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil || day < 1 || day > 31 {
			return nil, fmt.Errorf("calendar: bad day in period start %q", s)
		}
		starts = append(starts, monthDay{time.Month(month), day})
	}
	return starts, nil
}

// Resolve returns the period containing t. The school year opens at the
// first boundary; dates before the next boundary belong to the last one
// passed, so summer dates fall into the final trimester.
func (r *PeriodResolver) Resolve(t time.Time) credits.Period {
	r.mu.RLock()
	starts := r.starts
	r.mu.RUnlock()

	elapsed := daysIntoSchoolYear(starts, t.Month(), t.Day())

	period := credits.Period(1)
	for i := 1; i < len(starts); i++ {
		if daysIntoSchoolYear(starts, starts[i].month, starts[i].day) <= elapsed {
			period = credits.Period(i + 1)
		}
	}
	return period
}

// daysIntoSchoolYear measures a month-day offset from the school-year
// opening boundary, wrapping across the calendar year. A fixed non-leap
// reference year keeps the arithmetic stable.
func daysIntoSchoolYear(starts []monthDay, month time.Month, day int) int {
	ref := 2023
	open := time.Date(ref, starts[0].month, starts[0].day, 0, 0, 0, 0, time.UTC).YearDay()
	d := time.Date(ref, month, day, 0, 0, 0, 0, time.UTC).YearDay()
	offset := d - open
	if offset < 0 {
		offset += 365
	}
	return offset
}
