package domain

import (
	"fmt"
	"sort"
	"strings"

	apperrors "ghostwrite/internal/platform/errors"
)

// DefaultWindowDays is the recent-activity window the dashboard shows.
const DefaultWindowDays = 7

// Datum is one day of logged activity. Dates are ISO calendar days, so
// lexicographic order is chronological order.
type Datum struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LogEntry is a single activity to record.
type LogEntry struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

func (e LogEntry) Validate() error {
	if strings.TrimSpace(e.Type) == "" {
		return fmt.Errorf("%w: activity type is required", apperrors.ErrInvalidInput)
	}
	if e.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1", apperrors.ErrInvalidInput)
	}
	return nil
}

// SortAscending orders data chronologically in place.
func SortAscending(data []Datum) {
	sort.Slice(data, func(i, j int) bool { return data[i].Date < data[j].Date })
}

// Window returns the most recent n entries of chronologically sorted
// data; n <= 0 means everything.
func Window(data []Datum, n int) []Datum {
	if n <= 0 || n >= len(data) {
		return data
	}
	return data[len(data)-n:]
}
