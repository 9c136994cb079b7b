// Package timeslot parses 12-hour clock strings and slices a day's
// availability window into fixed-length bookable slots.
package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches "9:00AM" / "12:30PM". No space before the suffix and
// the suffix is case-sensitive.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(AM|PM)$`)

// ParsedTime is a clock-face value on a 24-hour dial. Callers must check
// Valid before reading Hour or Minute.
type ParsedTime struct {
	Hour   int
	Minute int
	Valid  bool
}

// ParseTime parses a 12-hour clock string into a 24-hour value. Malformed
// input yields a ParsedTime with Valid=false.
func ParseTime(text string) ParsedTime {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ParsedTime{}
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return ParsedTime{}
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return ParsedTime{}
	}

	switch {
	case m[3] == "AM" && hour == 12:
		hour = 0
	case m[3] == "PM" && hour != 12:
		hour += 12
	}

	return ParsedTime{Hour: hour, Minute: minute, Valid: true}
}

// Minutes returns the number of minutes since midnight
func (p ParsedTime) Minutes() int {
	return p.Hour*60 + p.Minute
}

// FormatClock renders minutes-since-midnight in the 12-hour display form, e.g. "1:30PM"
func FormatClock(minutes int) string {
	hour, minute := minutes/60, minutes%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d%s", hour, minute, suffix)
}

// FormatKey renders minutes-since-midnight as zero-padded 24-hour "HH:mm"
func FormatKey(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
