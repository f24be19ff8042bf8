package activity

import (
	"time"

	"github.com/gnomegl/hourglass/internal/models"
)

type Result struct {
	Counts Counts
	// Skipped counts timestamps that could not be parsed.
	Skipped int
}

// Aggregate buckets every committed date by its hour in loc. Nil histories
// contribute nothing. The result does not depend on the order of histories.
func Aggregate(histories []*models.CommitHistory, loc *time.Location) Result {
	if loc == nil {
		loc = time.UTC
	}

	var res Result
	for _, history := range histories {
		if history == nil {
			continue
		}
		for _, raw := range history.CommittedDates {
			hour, ok := LocalHour(raw, loc)
			if !ok {
				res.Skipped++
				continue
			}
			res.Counts.Add(Classify(hour))
		}
	}
	return res
}

// LocalHour parses an RFC 3339 timestamp and returns its hour in loc.
func LocalHour(raw string, loc *time.Location) (int, bool) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return 0, false
	}
	return t.In(loc).Hour(), true
}
