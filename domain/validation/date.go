package validation

import (
	"fmt"
	"time"
)

// dateFormats are the accepted spellings for date fields: plain ISO dates
// and full RFC 3339 timestamps.
var dateFormats = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a date field value. It returns an error when the input
// matches neither accepted format or names an impossible calendar date.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", s)
}
