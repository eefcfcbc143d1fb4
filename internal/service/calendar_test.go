package service

import (
	"testing"
	"time"

	"gradtrak_backend/internal/config"
	"gradtrak_backend/internal/credits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trimesterCalendar() *config.CalendarConfig {
	return &config.CalendarConfig{PeriodStarts: []string{"08-20", "11-20", "03-01"}}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestResolvePeriodAcrossSchoolYear(t *testing.T) {
	r, err := NewPeriodResolver(trimesterCalendar())
	require.NoError(t, err)

	assert.Equal(t, credits.Trimester1, r.Resolve(date(2025, time.September, 15)))
	assert.Equal(t, credits.Trimester1, r.Resolve(date(2025, time.August, 20)))
	assert.Equal(t, credits.Trimester2, r.Resolve(date(2025, time.November, 20)))
	assert.Equal(t, credits.Trimester2, r.Resolve(date(2026, time.January, 15)))
	assert.Equal(t, credits.Trimester3, r.Resolve(date(2026, time.March, 1)))
	assert.Equal(t, credits.Trimester3, r.Resolve(date(2026, time.April, 10)))
	// summer still reports the closing trimester
	assert.Equal(t, credits.Trimester3, r.Resolve(date(2026, time.July, 4)))
	// day before the year reopens
	assert.Equal(t, credits.Trimester3, r.Resolve(date(2026, time.August, 19)))
}

func TestPeriodResolverReload(t *testing.T) {
	r, err := NewPeriodResolver(trimesterCalendar())
	require.NoError(t, err)

	// shift trimester 2 earlier; October flips from T1 to T2
	require.NoError(t, r.Reload(&config.CalendarConfig{PeriodStarts: []string{"08-20", "10-01", "03-01"}}))
	assert.Equal(t, credits.Trimester2, r.Resolve(date(2025, time.October, 15)))

	// a bad reload keeps the previous boundaries
	assert.Error(t, r.Reload(&config.CalendarConfig{PeriodStarts: []string{"08-20"}}))
	assert.Equal(t, credits.Trimester2, r.Resolve(date(2025, time.October, 15)))
}

func TestNewPeriodResolverValidation(t *testing.T) {
	_, err := NewPeriodResolver(&config.CalendarConfig{PeriodStarts: []string{"08-20"}})
	assert.Error(t, err)

	_, err = NewPeriodResolver(&config.CalendarConfig{PeriodStarts: []string{"08-20", "13-01", "03-01"}})
	assert.Error(t, err)

	_, err = NewPeriodResolver(&config.CalendarConfig{PeriodStarts: []string{"08-20", "nope", "03-01"}})
	assert.Error(t, err)
}
