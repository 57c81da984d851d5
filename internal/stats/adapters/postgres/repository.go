package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Repository reads events and the service catalog from a Postgres replica
// of the church-management data (see schema.sql).
type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

var (
	_ ports.EventSourcePort = (*Repository)(nil)
	_ ports.CatalogPort     = (*Repository)(nil)
)

const listEventsSQL = `
SELECT
    e.id,
    e.name,
    e.start_date,
    e.end_date,
    e.calendar_id,
    s.event_id IS NOT NULL AS has_service,
    s.service_id,
    s.person_name
FROM events e
LEFT JOIN event_services s ON s.event_id = e.id
WHERE e.start_date BETWEEN $1 AND $2`

func (r *Repository) ListEvents(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
	query := listEventsSQL
	args := []any{q.From.UTC(), q.To.UTC()}

	if len(q.CalendarIDs) > 0 {
		query += fmt.Sprintf(" AND e.calendar_id = ANY($%d)", len(args)+1)
		args = append(args, pq.Array(q.CalendarIDs))
	}
	query += "\nORDER BY e.start_date, e.id, s.position"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	lastID := int64(-1)

	for rows.Next() {
		var (
			id         int64
			name       string
			start, end sql.NullTime
			calendarID sql.NullInt64
			hasService bool
			serviceID  sql.NullInt64
			person     sql.NullString
		)
		if err := rows.Scan(&id, &name, &start, &end, &calendarID, &hasService, &serviceID, &person); err != nil {
			return nil, err
		}

		// rows of one event are adjacent thanks to ORDER BY
		if id != lastID {
			events = append(events, domain.Event{
				Name:       name,
				StartDate:  formatTime(start),
				EndDate:    formatTime(end),
				CalendarID: calendarID.Int64,
				Services:   []domain.Assignment{},
			})
			lastID = id
		}
		if !hasService {
			continue
		}

		a := domain.Assignment{}
		if serviceID.Valid {
			v := serviceID.Int64
			a.ServiceID = &v
		}
		if person.Valid {
			v := person.String
			a.Name = &v
		}
		cur := &events[len(events)-1]
		cur.Services = append(cur.Services, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func formatTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}

func (r *Repository) ListServices(ctx context.Context) ([]domain.Service, error) {
	const query = `SELECT id, name, name_translated, service_group_id FROM services ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var (
			s          domain.Service
			translated sql.NullString
			groupID    sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &s.Name, &translated, &groupID); err != nil {
			return nil, err
		}
		s.NameTranslated = translated.String
		if groupID.Valid {
			v := groupID.Int64
			s.ServiceGroupID = &v
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *Repository) ListServiceGroups(ctx context.Context) ([]domain.ServiceGroup, error) {
	var groups []domain.ServiceGroup
	err := r.queryIDNames(ctx, `SELECT id, name FROM service_groups ORDER BY id`, func(id int64, name string) {
		groups = append(groups, domain.ServiceGroup{ID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *Repository) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	var calendars []domain.Calendar
	err := r.queryIDNames(ctx, `SELECT id, name FROM calendars ORDER BY id`, func(id int64, name string) {
		calendars = append(calendars, domain.Calendar{ID: id, Name: name})
	})
	if err != nil {
		return nil, err
	}
	return calendars, nil
}

// WritableServiceGroupIDs returns every group: the replica carries no
// permission model.
func (r *Repository) WritableServiceGroupIDs(ctx context.Context) ([]int64, error) {
	groups, err := r.ListServiceGroups(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func (r *Repository) queryIDNames(ctx context.Context, query string, fn func(id int64, name string)) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		fn(id, name)
	}
	return rows.Err()
}
