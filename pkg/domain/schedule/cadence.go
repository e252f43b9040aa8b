// Package schedule contains the recurring-transaction definition and its
// cadence arithmetic: how a definition's next occurrence advances each time
// the scheduler materializes it.
package schedule

import "time"

// Cadence is the recurrence interval of a recurring definition.
type Cadence string

const (
	Daily     Cadence = "daily"
	Weekly    Cadence = "weekly"
	Biweekly  Cadence = "biweekly"
	Monthly   Cadence = "monthly"
	Quarterly Cadence = "quarterly"
	Yearly    Cadence = "yearly"
)

// Valid reports whether the cadence is part of the enumeration.
func (c Cadence) Valid() bool {
	switch c {
	case Daily, Weekly, Biweekly, Monthly, Quarterly, Yearly:
		return true
	}
	return false
}

// Next returns the occurrence date that follows d for this cadence. Calendar
// units follow time.AddDate normalization (Jan 31 + 1 month rolls forward).
// An unrecognized cadence returns d unchanged and ok=false; callers treat
// that as a no-op rather than a fatal error.
func (c Cadence) Next(d time.Time) (next time.Time, ok bool) {
	switch c {
	case Daily:
		return d.AddDate(0, 0, 1), true
	case Weekly:
		return d.AddDate(0, 0, 7), true
	case Biweekly:
		return d.AddDate(0, 0, 14), true
	case Monthly:
		return d.AddDate(0, 1, 0), true
	case Quarterly:
		return d.AddDate(0, 3, 0), true
	case Yearly:
		return d.AddDate(1, 0, 0), true
	default:
		return d, false
	}
}
