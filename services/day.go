package services

import "time"

// All day buckets share one boundary: UTC midnight. A record written at
// 23:59 UTC and one at 00:01 UTC land in different buckets regardless of
// the server's local zone.

func DayStart(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

func DayEnd(t time.Time) time.Time {
	return DayStart(t).Add(24 * time.Hour)
}
