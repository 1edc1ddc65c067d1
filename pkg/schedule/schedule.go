// Package schedule resolves a collaborator's expected work window for a
// calendar date from weekly-range schedule rules.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ovalle/asistego/pkg/model"
	"github.com/ovalle/asistego/pkg/timeparse"
)

// weekdayNames is the canonical weekday vocabulary used by the schedule
// sheet, Monday through Sunday. Range rules resolve against this order.
var weekdayNames = []string{
	"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado", "Domingo",
}

// WeekdayName translates a date's weekday into the schedule vocabulary.
func WeekdayName(date time.Time) string {
	// time.Weekday counts Sunday=0; the vocabulary starts on Monday.
	return weekdayNames[(int(date.Weekday())+6)%7]
}

// Window is a work window: the expected start and end of a workday.
type Window struct {
	Start timeparse.Clock
	End   timeparse.Clock
}

// Resolver answers work-window lookups over a fixed rule set.
type Resolver struct {
	rules []model.ScheduleRule
	log   zerolog.Logger
}

// NewResolver builds a resolver over read-only schedule rules.
func NewResolver(rules []model.ScheduleRule, log zerolog.Logger) *Resolver {
	return &Resolver{rules: rules, log: log}
}

// Resolve returns the work window applying to a collaborator on a date: the
// first rule, in sheet order, whose expanded day range contains the date's
// weekday. ok is false when no rule matches; callers must then count all
// worked minutes as regular time. Rules with undecodable day ranges or
// unparseable window times are skipped with a warning.
func (r *Resolver) Resolve(collaborator string, date time.Time) (Window, bool) {
	day := WeekdayName(date)

	for _, rule := range r.rules {
		if rule.Collaborator != collaborator {
			continue
		}

		days, err := expandDayRange(rule.Days)
		if err != nil {
			r.log.Warn().Err(err).
				Str("collaborator", collaborator).
				Str("days", rule.Days).
				Msg("skipping schedule rule with bad day range")
			continue
		}
		if !contains(days, day) {
			continue
		}

		start, ok, err := timeparse.Parse(rule.WindowStart)
		if err != nil || !ok {
			r.log.Warn().Err(err).
				Str("collaborator", collaborator).
				Str("window_start", rule.WindowStart).
				Msg("skipping schedule rule with unparseable window start")
			continue
		}
		end, ok, err := timeparse.Parse(rule.WindowEnd)
		if err != nil || !ok {
			r.log.Warn().Err(err).
				Str("collaborator", collaborator).
				Str("window_end", rule.WindowEnd).
				Msg("skipping schedule rule with unparseable window end")
			continue
		}

		return Window{Start: start, End: end}, true
	}
	return Window{}, false
}

// expandDayRange decodes a day-range cell into the inclusive weekday slice it
// covers. A single day name covers just itself; "Lunes-Viernes" covers the
// slice between the first and last token in canonical order.
func expandDayRange(days string) ([]string, error) {
	parts := strings.Split(days, "-")

	first, err := weekdayIndex(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	last, err := weekdayIndex(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return nil, err
	}
	if last < first {
		return nil, fmt.Errorf("day range %q runs backwards", days)
	}
	return weekdayNames[first : last+1], nil
}

func weekdayIndex(name string) (int, error) {
	for i, d := range weekdayNames {
		if d == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

func contains(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
