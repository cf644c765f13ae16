package providers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

const (
	// MinWindowHours and MaxWindowHours bound a trailing-hours window.
	MinWindowHours = 1
	MaxWindowHours = 168

	// DefaultWindowHours applies when the hours parameter is malformed.
	DefaultWindowHours = 24
)

// Window is a concrete time range for calendar and mail queries:
// either a full calendar day or a trailing-hours range ending now.
type Window struct {
	Start time.Time
	End   time.Time
}

// ClampHours parses a raw hours parameter and clamps it to
// [MinWindowHours, MaxWindowHours]. Non-integer input falls back to
// DefaultWindowHours.
func ClampHours(raw string) int {
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultWindowHours
	}
	if hours < MinWindowHours {
		return MinWindowHours
	}
	if hours > MaxWindowHours {
		return MaxWindowHours
	}
	return hours
}

// TrailingWindow returns a window extending the given number of hours
// back from now, truncated to whole seconds.
func TrailingWindow(now time.Time, hours int) Window {
	end := now.Truncate(time.Second)
	return Window{Start: end.Add(-time.Duration(hours) * time.Hour), End: end}
}

// DayWindow returns the local day boundaries (00:00:00 to 23:59:59)
// of the given day in the given location.
func DayWindow(day time.Time, loc *time.Location) Window {
	y, m, d := day.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d, 23, 59, 59, 0, loc)
	return Window{Start: start, End: end}
}

// WindowFromQuery resolves the date/hours query parameters into a
// window. A non-empty hours parameter wins; otherwise an explicit
// date is used, defaulting to today.
func WindowFromQuery(dateStr, hoursStr string, now time.Time, loc *time.Location) (Window, error) {
	if hoursStr != "" {
		return TrailingWindow(now.In(loc), ClampHours(hoursStr)), nil
	}
	day := now.In(loc)
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			return Window{}, err
		}
		day = parsed
	}
	return DayWindow(day, loc), nil
}

// MailProvider proxies calendar and mail data from the remote
// provider on behalf of a delegated token. All calls return the
// provider payload verbatim; a missing token fails without a network
// call and upstream failures carry the upstream status and raw body.
type MailProvider interface {
	ListEvents(ctx context.Context, token string, window Window) (json.RawMessage, error)
	ListMail(ctx context.Context, token string) (json.RawMessage, error)
	ListMailWindow(ctx context.Context, token string, window Window) (json.RawMessage, error)
	GetMessage(ctx context.Context, token string, id string) (json.RawMessage, error)
}
