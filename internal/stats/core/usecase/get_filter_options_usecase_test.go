package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

type fakeCatalog struct {
	calendars []domain.Calendar
	groups    []domain.ServiceGroup
	writable  []int64
	err       error
}

func (f *fakeCatalog) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	return f.calendars, f.err
}

func (f *fakeCatalog) ListServiceGroups(ctx context.Context) ([]domain.ServiceGroup, error) {
	return f.groups, nil
}

func (f *fakeCatalog) WritableServiceGroupIDs(ctx context.Context) ([]int64, error) {
	return f.writable, nil
}

type fakeServices []domain.Service

func (f fakeServices) ListEvents(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
	return nil, nil
}

func (f fakeServices) ListServices(ctx context.Context) ([]domain.Service, error) {
	return f, nil
}

func groupID(id int64) *int64 { return &id }

func TestGetFilterOptions_Success(t *testing.T) {
	catalog := &fakeCatalog{
		calendars: []domain.Calendar{{ID: 2, Name: "Gottesdienste"}},
		groups:    []domain.ServiceGroup{{ID: 3, Name: "Technik"}, {ID: 1, Name: "Musik"}},
		writable:  []int64{3},
	}
	services := fakeServices{
		{ID: 6, Name: "Ton", NameTranslated: "Sound", ServiceGroupID: groupID(3)},
		{ID: 10, Name: "Band", ServiceGroupID: groupID(1)},
		{ID: 69, Name: "Video", ServiceGroupID: groupID(3)},
		{ID: 99, Name: "Lose"},
	}

	uc := NewGetFilterOptionsUseCase(catalog, services, FilterDefaults{
		ServiceIDs:      []int64{6, 69, 72},
		TimeframeMonths: 6,
		MinCount:        5,
	})
	uc.now = func() time.Time { return time.Date(2024, 8, 31, 15, 4, 5, 0, time.UTC) }

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.ServiceGroups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", out.ServiceGroups)
	}
	if out.ServiceGroups[0].Group.Name != "Musik" || out.ServiceGroups[1].Group.Name != "Technik" {
		t.Fatalf("expected groups ordered by id, got %+v", out.ServiceGroups)
	}
	if len(out.ServiceGroups[1].Services) != 2 {
		t.Fatalf("expected 2 Technik services, got %+v", out.ServiceGroups[1].Services)
	}
	technik := out.ServiceGroups[1].Services
	if technik[0].Label() != "Sound" || technik[0].Name != "Ton" || technik[1].Label() != "Video" {
		t.Fatalf("unexpected service labels: %+v", technik)
	}

	if out.Defaults.From != "2024-08-31" {
		t.Fatalf("expected from=2024-08-31, got %s", out.Defaults.From)
	}
	// AddDate normalizes Feb 31 to Mar 3
	if out.Defaults.To != "2025-03-03" {
		t.Fatalf("expected to=2025-03-03, got %s", out.Defaults.To)
	}
	if out.Defaults.MinCount != 5 || len(out.Defaults.ServiceIDs) != 3 {
		t.Fatalf("unexpected defaults: %+v", out.Defaults)
	}
	if len(out.WritableServiceGroupIDs) != 1 || out.WritableServiceGroupIDs[0] != 3 {
		t.Fatalf("unexpected writable ids: %v", out.WritableServiceGroupIDs)
	}
}

func TestGetFilterOptions_CatalogError(t *testing.T) {
	catalogErr := errors.New("forbidden")
	uc := NewGetFilterOptionsUseCase(&fakeCatalog{err: catalogErr}, fakeServices{}, FilterDefaults{})

	out, err := uc.Execute(context.Background())
	if !errors.Is(err, catalogErr) {
		t.Fatalf("expected catalog error, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}
