package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// Clock is a wall-clock time of day. Times are only ever compared within the
// same calendar date, so there is no timezone attached.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseError reports a clock value that is still malformed after
// normalization. It is record-local: callers log it and treat the time as
// absent instead of aborting their batch.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse clock time %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse normalizes heterogeneous clock text into a Clock. Accepted inputs are
// H:MM and H:MM:SS with or without leading zeros; they are zero-padded to
// strict HH:MM:SS before parsing. Blank input is "no value": ok is false and
// err is nil. Anything else that fails strict parsing returns a *ParseError.
func Parse(s string) (Clock, bool, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Clock{}, false, nil
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		// "0:00" -> "00:00:00"
		s = fmt.Sprintf("%s:%s:00", pad2(parts[0]), pad2(parts[1]))
	case 3:
		// "6:29:47" -> "06:29:47"
		s = fmt.Sprintf("%s:%s:%s", pad2(parts[0]), parts[1], parts[2])
	}

	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return Clock{}, false, &ParseError{Input: orig, Err: err}
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true, nil
}

// pad2 left-pads a numeric field to two digits. Empty fields pad to "00",
// so ":30" normalizes like "0:30".
func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

// Minutes returns the clock position as whole minutes since midnight.
// Seconds are truncated, matching the integer minute math of the ledger.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as strict HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}
