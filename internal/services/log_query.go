package services

import (
	"strconv"
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/dates"
	"github.com/baharkarakas/exercise-tracker/internal/models"
)

// LogQuery is a parsed from/to/limit filter over an exercise log.
// Zero-value fields mean the filter is absent.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ParseLogQuery validates the raw query parameters. The "to" bound is
// advanced to the last instant of its calendar day so the whole day is
// inclusive.
func ParseLogQuery(from, to, limit string) (LogQuery, error) {
	var q LogQuery

	if from != "" {
		t, err := dates.Parse(from)
		if err != nil {
			return LogQuery{}, models.ValidationError(`Invalid "from" date format. Use yyyy-MM-DD.`)
		}
		q.From = &t
	}

	if to != "" {
		t, err := dates.Parse(to)
		if err != nil {
			return LogQuery{}, models.ValidationError(`Invalid "to" date format. Use yyyy-MM-DD.`)
		}
		t = dates.EndOfDay(t)
		q.To = &t
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return LogQuery{}, models.ValidationError(`Invalid "limit" parameter. Must be a positive integer.`)
		}
		q.Limit = n
	}

	return q, nil
}

// Apply filters log in order: from, then to, then the head-limit, each
// step operating on the output of the previous one. Entries keep their
// append order and render with a calendar-date string.
func (q LogQuery) Apply(log []models.Exercise) []models.LogEntry {
	filtered := log

	if q.From != nil {
		var kept []models.Exercise
		for _, ex := range filtered {
			if !ex.Date.Before(*q.From) {
				kept = append(kept, ex)
			}
		}
		filtered = kept
	}

	if q.To != nil {
		var kept []models.Exercise
		for _, ex := range filtered {
			if !ex.Date.After(*q.To) {
				kept = append(kept, ex)
			}
		}
		filtered = kept
	}

	if q.Limit > 0 && len(filtered) > q.Limit {
		filtered = filtered[:q.Limit]
	}

	out := make([]models.LogEntry, 0, len(filtered))
	for _, ex := range filtered {
		out = append(out, models.LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        dates.DateString(ex.Date),
		})
	}
	return out
}
