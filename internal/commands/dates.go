package commands

import (
	"fmt"
	"time"

	"github.com/starling-tools/starling-export/internal/model"
)

// flagDateFormat is the YYYY-MM-DD layout date flags accept.
const flagDateFormat = "2006-01-02"

// defaultLookback is how far back --from/--since reach when unset.
const defaultLookback = 14 * 24 * time.Hour

// InputError indicates a malformed command-line value. Always reported
// before any network call is made.
type InputError struct {
	Flag  string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid --%s %q: %v", e.Flag, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid --%s: %v", e.Flag, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// resolveRange turns the from/to flag values into a date range. Empty flags
// fall back to 14 days ago and today respectively.
func resolveRange(fromFlag, toFlag string, now time.Time) (model.DateRange, error) {
	from, err := parseDateFlag("from", fromFlag, now.Add(-defaultLookback))
	if err != nil {
		return model.DateRange{}, err
	}
	to, err := parseDateFlag("to", toFlag, now)
	if err != nil {
		return model.DateRange{}, err
	}
	return model.DateRange{From: from, To: to}, nil
}

func parseDateFlag(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback.UTC().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse(flagDateFormat, value)
	if err != nil {
		return time.Time{}, &InputError{Flag: name, Value: value, Err: fmt.Errorf("expected YYYY-MM-DD")}
	}
	return t, nil
}
