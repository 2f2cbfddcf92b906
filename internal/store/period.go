package store

import "time"

// Period selectors accepted by the read paths.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// PeriodWindow maps a period selector onto a concrete [start, end] window
// ending at now. week/month/year cover the last 7/30/365 days; anything
// else, including "all", covers everything since the epoch.
func PeriodWindow(period string, now time.Time) (start, end time.Time) {
	end = now
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = now.AddDate(0, 0, -30)
	case PeriodYear:
		start = now.AddDate(0, 0, -365)
	default:
		start = time.Unix(0, 0)
	}
	return start, end
}
