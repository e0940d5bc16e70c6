package dateinput

import (
	"strconv"
	"time"

	"github.com/td0m/tuffous/pkg/task/date"
)

var utc = time.UTC

// Describe says how far d is from today in rough units
func Describe(d, today date.Date) string {
	days := int(d.In(utc).Sub(today.In(utc)).Hours()) / 24
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days < 0:
		return plural(-days, "day") + " ago"
	case days < 14:
		return "in " + plural(days, "day")
	// max 1 month
	case days <= 31:
		return "in " + plural(days/7, "week")
	default:
		return "in " + plural(days/31, "month")
	}
}

func plural(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
