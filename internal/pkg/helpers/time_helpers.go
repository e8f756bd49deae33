package helpers

import "time"

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// ParseDate parses a date-only string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDatePtr parses an optional date-only string, mapping nil to nil.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDuration parses a duration string, falling back to a default on error.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
