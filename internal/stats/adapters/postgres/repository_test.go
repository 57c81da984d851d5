package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"duty-stats-service/internal/stats/core/ports"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case sql.Scanner:
			if err := d.Scan(row.values[i]); err != nil {
				return err
			}
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *bool:
			v, ok := row.values[i].(bool)
			if !ok {
				return errors.New("type assertion to bool failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func januaryQuery() ports.EventQuery {
	return ports.EventQuery{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC),
	}
}

// ------------------------------------------------------------
// LIST EVENTS
// ------------------------------------------------------------

func TestRepository_ListEvents_GroupsJoinedRows(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "LEFT JOIN event_services") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{int64(1), "Gottesdienst", start, nil, int64(2), true, int64(6), "Alice"}},
					{values: []any{int64(1), "Gottesdienst", start, nil, int64(2), true, nil, "Bob"}},
					{values: []any{int64(1), "Gottesdienst", start, nil, int64(2), true, int64(69), nil}},
					{values: []any{int64(2), "Probe", start.Add(48 * time.Hour), nil, nil, false, nil, nil}},
				},
			}, nil
		},
	}

	repo := NewRepository(db)

	events, err := repo.ListEvents(context.Background(), januaryQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.StartDate != "2024-01-10T09:00:00Z" || first.EndDate != "" || first.CalendarID != 2 {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if len(first.Services) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(first.Services))
	}
	if *first.Services[0].ServiceID != 6 || first.Services[0].PersonName() != "Alice" {
		t.Fatalf("unexpected assignment: %+v", first.Services[0])
	}
	if first.Services[1].ServiceID != nil {
		t.Fatalf("expected nil service id")
	}
	if first.Services[2].Name != nil {
		t.Fatalf("expected nil person name")
	}

	if len(events[1].Services) != 0 || events[1].CalendarID != 0 {
		t.Fatalf("expected event without assignments, got %+v", events[1])
	}
	if len(db.lastArgs) != 2 {
		t.Fatalf("expected 2 args without calendar filter, got %d", len(db.lastArgs))
	}
}

func TestRepository_ListEvents_CalendarFilter(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepository(db)

	q := januaryQuery()
	q.CalendarIDs = []int64{2, 7}

	if _, err := repo.ListEvents(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "e.calendar_id = ANY($3)") {
		t.Fatalf("expected calendar filter in query, got: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 {
		t.Fatalf("expected 3 args, got %d", len(db.lastArgs))
	}
	if _, ok := db.lastArgs[2].(*pq.Int64Array); !ok {
		t.Fatalf("expected pq.Int64Array arg, got %T", db.lastArgs[2])
	}
}

func TestRepository_ListEvents_QueryError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db error")
		},
	}

	if _, err := NewRepository(db).ListEvents(context.Background(), januaryQuery()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRepository_ListEvents_RowsError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("connection reset")}, nil
		},
	}

	if _, err := NewRepository(db).ListEvents(context.Background(), januaryQuery()); err == nil {
		t.Fatalf("expected rows error, got nil")
	}
}

// ------------------------------------------------------------
// CATALOG
// ------------------------------------------------------------

func TestRepository_ListServices(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{int64(6), "Ton", "Sound", int64(3)}},
					{values: []any{int64(7), "Lose", nil, nil}},
				},
			}, nil
		},
	}

	services, err := NewRepository(db).ListServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[0].ServiceGroupID == nil || *services[0].ServiceGroupID != 3 {
		t.Fatalf("expected group 3, got %+v", services[0])
	}
	if services[1].ServiceGroupID != nil {
		t.Fatalf("expected no group, got %+v", services[1])
	}
	if services[0].Label() != "Sound" || services[1].Label() != "Lose" {
		t.Fatalf("unexpected labels %q %q", services[0].Label(), services[1].Label())
	}
}

func TestRepository_CatalogQueries(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			switch {
			case strings.Contains(query, "FROM calendars"):
				return &fakeRowScanner{rows: []fakeRow{{values: []any{int64(2), "Gottesdienste"}}}}, nil
			case strings.Contains(query, "FROM service_groups"):
				return &fakeRowScanner{rows: []fakeRow{
					{values: []any{int64(1), "Musik"}},
					{values: []any{int64(3), "Technik"}},
				}}, nil
			}
			t.Fatalf("unexpected query: %s", query)
			return nil, nil
		},
	}
	repo := NewRepository(db)

	calendars, err := repo.ListCalendars(context.Background())
	if err != nil || len(calendars) != 1 || calendars[0].Name != "Gottesdienste" {
		t.Fatalf("unexpected calendars %+v err=%v", calendars, err)
	}

	groups, err := repo.ListServiceGroups(context.Background())
	if err != nil || len(groups) != 2 {
		t.Fatalf("unexpected groups %+v err=%v", groups, err)
	}

	ids, err := repo.WritableServiceGroupIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("expected every group to be writable, got %v", ids)
	}
}
