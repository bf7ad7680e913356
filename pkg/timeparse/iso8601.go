package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var iso8601DatetimeRe = regexp.MustCompile(
	`^(?P<year>\d{4})-(?P<month>\d{1,2})-(?P<day>\d{1,2})` +
		`[T ](?P<hour>\d{1,2}):(?P<minute>\d{1,2})` +
		`(?::(?P<second>\d{1,2})(?:\.(?P<microsecond>\d{1,6})\d{0,6})?)?` +
		`(?P<tzinfo>Z|[+-]\d{2}(?::?\d{2})?)?$`,
)

// ParseISO8601 parses an ISO-8601 datetime string.
//
// Accepted shape: YYYY-MM-DD[T or space]HH:MM[:SS[.ffffff]][Z|±HH[[:]MM]].
// Fractional seconds are right-padded to microseconds and anything past six
// digits is dropped. A missing zone yields the Naive location, "Z" yields UTC
// and numeric offsets yield a FixedZone.
func ParseISO8601(value string) (time.Time, error) {
	match := iso8601DatetimeRe.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNotISO8601, value)
	}

	parts := make(map[string]string, len(match))
	for i, name := range iso8601DatetimeRe.SubexpNames() {
		if name != "" {
			parts[name] = match[i]
		}
	}

	num := func(key string) int {
		n, _ := strconv.Atoi(parts[key])
		return n
	}

	year, month, day := num("year"), num("month"), num("day")
	hour, minute, second := num("hour"), num("minute"), num("second")

	var micro int
	if frac := parts["microsecond"]; frac != "" {
		micro, _ = strconv.Atoi(frac + strings.Repeat("0", 6-len(frac)))
	}

	if err := checkCalendar(year, month, day, hour, minute, second); err != nil {
		return time.Time{}, err
	}

	loc, err := parseZone(parts["tzinfo"])
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, micro*int(time.Microsecond), loc), nil
}

func parseZone(tz string) (*time.Location, error) {
	switch tz {
	case "":
		return Naive, nil
	case "Z":
		return time.UTC, nil
	}

	hours, _ := strconv.Atoi(tz[1:3])
	var minutes int
	if len(tz) > 3 {
		minutes, _ = strconv.Atoi(tz[len(tz)-2:])
	}

	offset := hours*60 + minutes
	if offset >= 24*60 {
		return nil, fmt.Errorf("%w: offset %s", ErrOutOfRange, tz)
	}
	if tz[0] == '-' {
		offset = -offset
	}

	return FixedZone(offset), nil
}

func checkCalendar(year, month, day, hour, minute, second int) error {
	switch {
	case year < 1:
		return fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	case month < 1 || month > 12:
		return fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	case day < 1 || day > daysIn(year, time.Month(month)):
		return fmt.Errorf("%w: day %d", ErrOutOfRange, day)
	case hour > 23:
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, hour)
	case minute > 59:
		return fmt.Errorf("%w: minute %d", ErrOutOfRange, minute)
	case second > 59:
		return fmt.Errorf("%w: second %d", ErrOutOfRange, second)
	}
	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
