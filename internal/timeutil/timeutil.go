// ABOUTME: Resolves the reference time used to evaluate phrases
// ABOUTME: Reads the clock or parses an explicit --now value in the configured zone

package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/jonboulle/clockwork"
)

// Reference returns the instant phrases are evaluated against.
// An empty value means the clock's current time. RFC3339 values keep their
// own offset; anything else is parsed by jinzhu/now in loc, with missing
// fields taken from the clock ("12:45" is today at 12:45).
func Reference(clock clockwork.Clock, loc *time.Location, value string) (time.Time, error) {
	base := clock.Now().In(loc)
	value = strings.TrimSpace(value)
	if value == "" {
		return base, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := now.New(base).Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference time %q: %w", value, err)
	}
	return t, nil
}

