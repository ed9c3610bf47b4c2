package dateutils

import "time"

// DayLabelLayout renders a short weekday, short month and day number, e.g. "Tue, Oct 17".
const DayLabelLayout = "Mon, Jan 2"

// FormatDayLabel formats t as a forecast day label in t's own location.
func FormatDayLabel(t time.Time) string {
	return t.Format(DayLabelLayout)
}

