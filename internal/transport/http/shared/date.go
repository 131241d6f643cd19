package shared

import "time"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseDate accepts RFC3339, a zone-less timestamp or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range dateLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

// FormatDate renders a backend date or timestamp as YYYY-MM-DD, or the
// raw value when it does not parse.
func FormatDate(value string) string {
	parsed, err := ParseDate(value)
	if err != nil || parsed.IsZero() {
		return value
	}
	return parsed.Format("2006-01-02")
}
