package timeparse

import (
	"fmt"
	"math"
	"time"
)

// Naive is the location assigned to datetimes parsed without a zone designator.
// It has a zero offset but is distinct from time.UTC.
var Naive = time.FixedZone("", 0)

// IsNaive reports whether t was parsed without zone information.
func IsNaive(t time.Time) bool {
	return t.Location() == Naive
}

// Offset is anything FixedZone accepts: a signed number of minutes or a time.Duration.
type Offset interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// FixedZone returns a location with a fixed offset from UTC named "+HHMM" or "-HHMM".
// Plain numbers are minutes; a time.Duration is floored to whole minutes.
func FixedZone[T Offset](offset T) *time.Location {
	var minutes float64
	if d, ok := any(offset).(time.Duration); ok {
		minutes = math.Floor(d.Seconds() / 60)
	} else {
		minutes = float64(offset)
	}

	sign := "+"
	if minutes < 0 {
		sign = "-"
	}
	abs := math.Abs(minutes)
	name := fmt.Sprintf("%s%02d%02d", sign, int(abs/60), int(math.Mod(abs, 60)))

	return time.FixedZone(name, int(minutes*60))
}
