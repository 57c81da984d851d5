package usecase_test

import (
	"context"
	"errors"
	"testing"

	"duty-stats-service/internal/stats/core/chart"
	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
	"duty-stats-service/internal/stats/core/usecase"
)

func TestListEvents_Success(t *testing.T) {
	uc := usecase.NewListEventsUseCase(sampleSource())

	out, err := uc.Execute(context.Background(), januaryWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 events, got %+v", out)
	}

	first := out[0]
	if first.Name != "Gottesdienst" {
		t.Fatalf("expected events ordered by start, got %s first", first.Name)
	}
	want := []domain.ListedAssignment{
		{ServiceName: "Sound", Person: "Alice"},
		{ServiceName: "Video", Person: "Alice"},
	}
	if len(first.Assignments) != len(want) {
		t.Fatalf("expected only selected services, got %+v", first.Assignments)
	}
	for i := range want {
		if first.Assignments[i] != want[i] {
			t.Fatalf("assignment %d: expected %+v, got %+v", i, want[i], first.Assignments[i])
		}
	}
}

func TestListEvents_EventWithoutSelectedServices(t *testing.T) {
	src := &fakeEventSource{
		ListEventsFn: func(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
			return []domain.Event{{
				Name:       "Gemeindefest",
				StartDate:  "2024-01-20",
				CalendarID: 2,
				Services:   []domain.Assignment{{ServiceID: nil, Name: ptr("Alice")}, assign(104, "Carol")},
			}}, nil
		},
	}

	out, err := usecase.NewListEventsUseCase(src).Execute(context.Background(), januaryWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Assignments == nil || len(out[0].Assignments) != 0 {
		t.Fatalf("expected one event with an empty assignment list, got %+v", out)
	}
}

func TestListEvents_StartDateFormats(t *testing.T) {
	src := &fakeEventSource{
		ListEventsFn: func(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
			return []domain.Event{
				{Name: "zoneless", StartDate: "2024-01-10T09:00:00", CalendarID: 2, Services: []domain.Assignment{assign(6, "Alice")}},
				{Name: "offset", StartDate: "2024-01-11T09:00:00+01:00", CalendarID: 2, Services: []domain.Assignment{assign(6, "Alice")}},
				{Name: "spaced", StartDate: "2024-01-12 18:30", CalendarID: 2, Services: []domain.Assignment{assign(6, "Alice")}},
				{Name: "day", StartDate: "2024-01-13", CalendarID: 2, Services: []domain.Assignment{assign(6, "Alice")}},
				{Name: "february", StartDate: "2024-02-01T09:00:00", CalendarID: 2, Services: []domain.Assignment{assign(6, "Alice")}},
				{Name: "garbage", StartDate: "next sunday", CalendarID: 2, Services: []domain.Assignment{assign(6, "Alice")}},
			}, nil
		},
	}

	out, err := usecase.NewListEventsUseCase(src).Execute(context.Background(), januaryWindow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"zoneless", "offset", "spaced", "day"}
	if len(out) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), out)
	}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("event %d: expected %s, got %s", i, name, out[i].Name)
		}
	}

	stats, err := usecase.NewGetStatsUseCase(src, chart.Options{}, nil).Execute(context.Background(), usecase.GetStatsInput{
		WindowInput: januaryWindow(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.EventCount != 4 || len(stats.ByService) != 1 || stats.ByService[0].Count != 4 {
		t.Fatalf("expected all 4 dated events counted, got %+v", stats)
	}
}

func TestListEvents_InvalidWindow(t *testing.T) {
	src := &fakeEventSource{}
	in := januaryWindow()
	in.CalendarIDs = nil

	_, err := usecase.NewListEventsUseCase(src).Execute(context.Background(), in)
	if !errors.Is(err, usecase.ErrInvalidStatsQuery) {
		t.Fatalf("expected ErrInvalidStatsQuery, got %v", err)
	}
	if src.called {
		t.Fatalf("source should not be called on invalid input")
	}
}
