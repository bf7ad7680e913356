package timeparse

import (
	"net/mail"
	"strings"
	"time"
)

// ParseRFC822 parses an RFC-822 / RFC-5322 date such as "Sun, 15 Jan 2023 10:30:00 +0000".
// The result carries a FixedZone for its offset; "-0000" (no zone information)
// yields a Naive time.
func ParseRFC822(value string) (time.Time, error) {
	t, err := mail.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if unknownZone(value) {
		return t.In(Naive), nil
	}
	_, offset := t.Zone()
	return t.In(FixedZone(offset / 60)), nil
}

func unknownZone(value string) bool {
	for _, token := range strings.Fields(value) {
		if token == "-0000" {
			return true
		}
	}
	return false
}
