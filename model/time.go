package model

//
// Wire timestamp format
//

import (
	"time"

	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// TimeFormat is the fixed textual timestamp format used on the wire
// (yyyy/MM/dd HH:mm:ss in the GMT time zone, POSIX locale).
const TimeFormat = "2006/01/02 15:04:05"

// ParseTime parses a wire timestamp. Absent input or a parse failure
// yields an empty value rather than an error, since entity decoding is
// tolerant of missing and malformed timestamps.
func ParseTime(value optional.Value[string]) optional.Value[time.Time] {
	if value.IsNone() {
		return optional.None[time.Time]()
	}
	parsed, err := time.ParseInLocation(TimeFormat, value.Unwrap(), time.UTC)
	if err != nil {
		return optional.None[time.Time]()
	}
	return optional.Some(parsed)
}

// FormatTime formats a timestamp using the wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}
