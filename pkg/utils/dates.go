package utils

import (
	"time"
)

// DateLayout is the wire format for booking dates. Ranges are inclusive
// on both ends.
const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
