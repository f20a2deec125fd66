package model

import "time"

const (
	// DateLayout is the date literal format the schema expects.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the combined date and time literal format the schema
	// expects. Seconds are not stored.
	DateTimeLayout = "2006-01-02 15:04"

	// EndOfDay is appended to a date literal to close a one-day range.
	EndOfDay = " 23:59:59"
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
