package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

var (
	ErrInvalidStatsQuery      = errors.New("invalid stats query")
	ErrInvalidTimeRange       = errors.New("invalid time range")
	ErrInvalidMinCount        = errors.New("invalid min_count")
	ErrInvalidAggregationMode = errors.New("invalid aggregation mode")
)

// WindowInput selects the events a dashboard request looks at.
type WindowInput struct {
	CalendarIDs []int64
	ServiceIDs  []int64
	From        time.Time
	To          time.Time
}

func (in WindowInput) validate() error {
	if len(in.CalendarIDs) == 0 || len(in.ServiceIDs) == 0 {
		return ErrInvalidStatsQuery
	}
	if in.From.IsZero() || in.To.IsZero() || in.From.After(in.To) {
		return ErrInvalidTimeRange
	}
	return nil
}

// fetchWindow loads events and the service lookup concurrently and keeps only
// events of the selected calendars starting inside [From, To], ordered by start.
func fetchWindow(ctx context.Context, src ports.EventSourcePort, in WindowInput) ([]domain.Event, domain.ServiceLookup, error) {
	var (
		events   []domain.Event
		services []domain.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = src.ListEvents(gctx, ports.EventQuery{
			From:        in.From,
			To:          in.To,
			CalendarIDs: in.CalendarIDs,
		})
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		services, err = src.ListServices(gctx)
		if err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return filterWindow(events, in), domain.NewServiceLookup(services), nil
}

func filterWindow(events []domain.Event, in WindowInput) []domain.Event {
	calendars := make(map[int64]struct{}, len(in.CalendarIDs))
	for _, id := range in.CalendarIDs {
		calendars[id] = struct{}{}
	}

	type dated struct {
		event domain.Event
		start time.Time
	}
	kept := make([]dated, 0, len(events))
	for _, e := range events {
		if _, ok := calendars[e.CalendarID]; !ok {
			continue
		}
		start, ok := parseStart(e.StartDate)
		if !ok || start.Before(in.From) || start.After(in.To) {
			continue
		}
		kept = append(kept, dated{event: e, start: start})
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].start.Before(kept[j].start) })

	out := make([]domain.Event, len(kept))
	for i, d := range kept {
		out[i] = d.event
	}
	return out
}

// startLayouts are tried in order; zoneless values are read as UTC.
var startLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// parseStart accepts every start date the aggregator can bucket: any value
// whose first ten characters form a YYYY-MM-DD day.
func parseStart(s string) (time.Time, bool) {
	if len(s) < len(time.DateOnly) {
		return time.Time{}, false
	}
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err == nil {
		return t, true
	}
	return time.Time{}, false
}
