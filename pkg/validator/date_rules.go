package validator

import (
	"fmt"
	"time"
)

func timeRule(check func(t time.Time) bool) func(any) bool {
	return func(value any) bool {
		t, ok := value.(time.Time)
		return ok && check(t)
	}
}

func PastDate() Rule {
	return Rule{
		Check: timeRule(func(t time.Time) bool { return t.Before(time.Now()) }),
		Error: ValidationError{
			Message:        "date must be in the past",
			TranslationKey: "validation.date_past",
		},
	}
}

func FutureDate() Rule {
	return Rule{
		Check: timeRule(func(t time.Time) bool { return t.After(time.Now()) }),
		Error: ValidationError{
			Message:        "date must be in the future",
			TranslationKey: "validation.date_future",
		},
	}
}

func DateAfter(after time.Time) Rule {
	return Rule{
		Check: timeRule(func(t time.Time) bool { return t.After(after) }),
		Error: ValidationError{
			Message:        fmt.Sprintf("date must be after %s", after.Format(time.DateOnly)),
			TranslationKey: "validation.date_after",
			TranslationValues: map[string]any{
				"after": after.Format(time.DateOnly),
			},
		},
	}
}

func DateBefore(before time.Time) Rule {
	return Rule{
		Check: timeRule(func(t time.Time) bool { return t.Before(before) }),
		Error: ValidationError{
			Message:        fmt.Sprintf("date must be before %s", before.Format(time.DateOnly)),
			TranslationKey: "validation.date_before",
			TranslationValues: map[string]any{
				"before": before.Format(time.DateOnly),
			},
		},
	}
}

// DateBetween validates start <= value <= end.
func DateBetween(start, end time.Time) Rule {
	return Rule{
		Check: timeRule(func(t time.Time) bool { return !t.Before(start) && !t.After(end) }),
		Error: ValidationError{
			Message: fmt.Sprintf("date must be between %s and %s",
				start.Format(time.DateOnly), end.Format(time.DateOnly)),
			TranslationKey: "validation.date_between",
			TranslationValues: map[string]any{
				"start": start.Format(time.DateOnly),
				"end":   end.Format(time.DateOnly),
			},
		},
	}
}
