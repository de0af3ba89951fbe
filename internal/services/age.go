package services

import (
	"fmt"
	"time"

	"github.com/k1ngsterr1/quick-notes/internal/models"
)

// Age labels that are not derived from a duration.
const (
	AgeJustNow     = "Just now"
	AgeUnknownDate = "Unknown date"
)

// DefaultDateLayout renders ages of 30 days and more.
const DefaultDateLayout = "1/2/2006"

// AgeFormatter turns record timestamps into human-readable relative ages.
type AgeFormatter struct {
	Layout   string
	Location *time.Location
}

// DefaultAgeFormatter uses DefaultDateLayout in the local time zone.
func DefaultAgeFormatter() AgeFormatter {
	return AgeFormatter{Layout: DefaultDateLayout, Location: time.Local}
}

// Format returns the relative age of ts as seen at now.
func (f AgeFormatter) Format(ts, now time.Time) string {
	delta := int64(now.Sub(ts) / time.Second)
	switch {
	case delta < 60:
		return AgeJustNow
	case delta < 3600:
		return plural(delta/60, "minute")
	case delta < 86400:
		return plural(delta/3600, "hour")
	case delta < 7*86400:
		return plural(delta/86400, "day")
	case delta < 30*86400:
		return plural(delta/86400/7, "week")
	}

	layout := f.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(layout)
}

// Label computes the display label of r. Records without a timestamp keep
// their stored label.
func (f AgeFormatter) Label(r models.Record, now time.Time) string {
	if r.Timestamp == nil {
		if r.AgeLabel == "" {
			return AgeUnknownDate
		}
		return r.AgeLabel
	}
	return f.Format(*r.Timestamp, now)
}

// RelativeAge formats ts with the default formatter.
func RelativeAge(ts, now time.Time) string {
	return DefaultAgeFormatter().Format(ts, now)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
