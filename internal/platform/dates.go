package platform

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/lsd/pkg/core"
)

var dateLayouts = []string{"2006-01-02", core.JournalLayout}

// ParseDate interprets a --date value relative to now.
// Accepted: YYYY-MM-DD, YYYY_MM_DD, today, yesterday, tomorrow and weekday
// names (full or three letters), which resolve to the most recent occurrence
// up to and including today. Errors wrap core.ErrInvalidDate.
func ParseDate(value string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if wd, ok := parseWeekday(s); ok {
		back := (int(today.Weekday()) - int(wd) + 7) % 7
		return today.AddDate(0, 0, -back), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%q: %w", value, core.ErrInvalidDate)
}

func parseWeekday(s string) (time.Weekday, bool) {
	if len(s) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, true
		}
	}
	return 0, false
}
