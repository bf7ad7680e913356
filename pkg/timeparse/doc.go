// Package timeparse parses the datetime notations found in tabular exports into
// time.Time values.
//
// Three notations are supported:
//
//   - ISO-8601 via ParseISO8601: "2023-01-15T10:30:00Z", "2023-01-15 10:30",
//     "2023-01-15T10:30:00.5+05:30". Values without a zone designator are
//     returned in the Naive location so callers can tell them apart from UTC.
//   - RFC-822 / RFC-5322 via ParseRFC822: "Sun, 15 Jan 2023 10:30:00 +0000".
//   - strptime layouts via StrptimeLayout, which translates "%Y-%m-%d %H:%M"
//     style directives into a Go reference layout usable with time.Parse.
//
// FixedZone builds named fixed-offset locations ("+0530", "-0800") from a
// number of minutes or a time.Duration.
//
// # Error Handling
//
// ParseISO8601 wraps ErrNotISO8601 so callers can match it with errors.Is.
// ParseRFC822 returns whatever the mail date parser reports, and
// StrptimeLayout reports ErrUnsupportedDirective for directives without a Go
// layout equivalent.
//
// All functions are pure and safe for concurrent use.
package timeparse
