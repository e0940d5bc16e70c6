package date

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrParsing = errors.New("error parsing date")

// ParseDate reads a user supplied day relative to now
func ParseDate(s string, now time.Time) (Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	today := Today(now)
	switch s {
	case "":
		return Date{}, ErrParsing
	case "today", "tod", "now":
		return today, nil
	case "tomorrow", "tom":
		return today.AddDays(1), nil
	case "yesterday", "yday":
		return today.AddDays(-1), nil
	}
	if wkd, err := parseWeekday(s, today); err == nil {
		return wkd, nil
	}
	if d, err := parseDayOffset(s, today); err == nil {
		return d, nil
	}
	if d, err := parseAbsolute(s, now); err == nil {
		return d, nil
	}
	if d, err := parseDayOfMonth(s, today); err == nil {
		return d, nil
	}
	return Date{}, ErrParsing
}

// ParseDateTime reads a user supplied point in time, in now's location.
// A bare day resolves to midnight.
func ParseDateTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "now" {
		return now, nil
	}
	normalized := strings.ReplaceAll(s, "/", "-")
	year := strconv.Itoa(now.Year())
	for _, v := range []string{normalized, year + "-" + normalized} {
		for _, layout := range dateTimeFormats {
			if t, err := time.ParseInLocation(layout, v, now.Location()); err == nil {
				return t, nil
			}
		}
	}
	d, err := ParseDate(s, now)
	if err != nil {
		return time.Time{}, err
	}
	return d.In(now.Location()), nil
}

var dateTimeFormats = []string{
	"2006-1-2-15:04:05",
	"2006-1-2-15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
}

var absoluteFormats = []string{
	"2006-1-2",
	"_2 Jan 2006",
	"_2 January 2006",
	"Jan _2 2006",
	"January _2 2006",
}

// formats without a year resolve to the current one
var yearlessFormats = []string{
	"1-2",
	"_2 Jan",
	"_2 January",
	"Jan _2",
	"January _2",
}

func parseAbsolute(s string, now time.Time) (Date, error) {
	s = strings.ReplaceAll(s, "/", "-")
	for _, layout := range absoluteFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Of(t), nil
		}
	}
	for _, layout := range yearlessFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return New(now.Year(), t.Month(), t.Day()), nil
		}
	}
	return Date{}, ErrParsing
}

type multiplier struct {
	key   string
	value int
}

var multipliers = []multiplier{
	{"days", 1},
	{"weeks", 7},
	{"months", 30},
	{"years", 365},
}

var offsetPattern = regexp.MustCompile(`^(?:in\s*)?([+-])?(\d+)\s*([a-z]*)\s*(ago)?$`)

func parseDayOffset(s string, today Date) (Date, error) {
	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, ErrParsing
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, err
	}
	mult := 1
	if unit := m[3]; unit != "" {
		mult = 0
		for _, candidate := range multipliers {
			if strings.HasPrefix(candidate.key, unit) {
				mult = candidate.value
				break
			}
		}
		if mult == 0 {
			return Date{}, errors.New("invalid suffix, expected 'days', 'months', 'weeks', or 'years'")
		}
	}
	if m[1] == "-" || m[4] == "ago" {
		n = -n
	}
	return today.AddDays(n * mult), nil
}

// parseWeekday resolves a weekday name to its next occurrence after today
func parseWeekday(s string, today Date) (Date, error) {
	for i := time.Sunday; i <= time.Saturday; i++ {
		name := strings.ToLower(i.String())
		if s == name || s == name[:3] {
			days := int(i - today.Weekday())
			if days <= 0 {
				days += 7
			}
			return today.AddDays(days), nil
		}
	}
	return Date{}, errors.New("invalid weekday")
}

var ordinalPattern = regexp.MustCompile(`^(\d{1,2})(st|nd|rd|th)$`)

// parseDayOfMonth resolves "18th" to the next 18th, today included
func parseDayOfMonth(s string, today Date) (Date, error) {
	m := ordinalPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, ErrParsing
	}
	n, _ := strconv.Atoi(m[1])
	lastDigit := n % 10
	forceTh := n%100-lastDigit == 10

	var valid bool
	switch {
	case n < 1 || n > 31:
	case lastDigit == 1 && !forceTh:
		valid = m[2] == "st"
	case lastDigit == 2 && !forceTh:
		valid = m[2] == "nd"
	case lastDigit == 3 && !forceTh:
		valid = m[2] == "rd"
	default:
		valid = m[2] == "th"
	}
	if !valid {
		return Date{}, errors.New("invalid postfix")
	}

	d := New(today.Year, today.Month, n)
	if d.Before(today) {
		d = New(today.Year, today.Month+1, n)
	}
	return d, nil
}
