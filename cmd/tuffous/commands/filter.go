package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/td0m/tuffous/pkg/query"
	"github.com/td0m/tuffous/pkg/task/date"
)

type filterFlags struct {
	today     bool
	date      string
	dateRange []string
	ddl       string
	ddlRange  []string
	logged    string
	tags      []string
	name      string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.today, "ftoday", false, "Only tasks scheduled for today")
	fs.StringVar(&f.date, "fdate", "", "Only tasks scheduled on this date")
	fs.StringSliceVar(&f.dateRange, "fdater", nil, "Only tasks scheduled within FROM,TO (inclusive, empty bound is open)")
	fs.StringVar(&f.ddl, "fddl", "", "Only tasks due on this date")
	fs.StringSliceVar(&f.ddlRange, "fddlr", nil, "Only tasks due within FROM,TO (inclusive, empty bound is open)")
	fs.StringVar(&f.logged, "flogged", "false", "Completion: false (pending), true (completed) or all")
	fs.StringSliceVar(&f.tags, "ftag", nil, "Required tags; a tag ending in ! must be absent")
	fs.StringVar(&f.name, "fname", "", "Case-insensitive name search")
}

func (f *filterFlags) build(now time.Time) (query.Filter, error) {
	logged, err := query.ParseLogged(f.logged)
	if err != nil {
		return query.Filter{}, err
	}
	out := query.Filter{
		Logged: logged,
		Today:  f.today,
		Tags:   f.tags,
		Name:   f.name,
		Now:    now,
	}
	if out.Scheduled, err = parseOptionalDate("fdate", f.date, now); err != nil {
		return out, err
	}
	if out.Deadline, err = parseOptionalDate("fddl", f.ddl, now); err != nil {
		return out, err
	}
	if out.ScheduledRange, err = parseRange("fdater", f.dateRange, now); err != nil {
		return out, err
	}
	if out.DeadlineRange, err = parseRange("fddlr", f.ddlRange, now); err != nil {
		return out, err
	}
	return out, nil
}

func parseOptionalDate(flag, s string, now time.Time) (*date.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := date.ParseDate(s, now)
	if err != nil {
		return nil, fmt.Errorf("--%s %q: %w", flag, s, err)
	}
	return &d, nil
}

func parseRange(flag string, bounds []string, now time.Time) (*query.Range, error) {
	if len(bounds) == 0 {
		return nil, nil
	}
	if len(bounds) != 2 {
		return nil, fmt.Errorf("--%s takes exactly two dates, got %d", flag, len(bounds))
	}
	var r query.Range
	var err error
	if r.From, err = parseBound(flag, bounds[0], now); err != nil {
		return nil, err
	}
	if r.To, err = parseBound(flag, bounds[1], now); err != nil {
		return nil, err
	}
	return &r, nil
}

func parseBound(flag, s string, now time.Time) (*date.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" || s == "_" {
		return nil, nil
	}
	return parseOptionalDate(flag, s, now)
}
