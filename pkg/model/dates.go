package model

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the calendar date forms seen in the sheets. Intake forms
// write DD/MM/YYYY; manual edits sometimes drop the leading zeros or use ISO.
var dateLayouts = []string{"02/01/2006", "2/1/2006", "2006-01-02"}

// ParseDate parses a sheet calendar date in the local timezone.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
