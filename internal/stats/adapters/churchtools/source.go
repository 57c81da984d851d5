package churchtools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

var (
	_ ports.EventSourcePort = (*Client)(nil)
	_ ports.CatalogPort     = (*Client)(nil)
)

// ListEvents requests the days covering q.From..q.To. Calendar filtering is
// left to the caller.
func (c *Client) ListEvents(ctx context.Context, q ports.EventQuery) ([]domain.Event, error) {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.Set("include", "eventServices")
	if !q.From.IsZero() {
		args.Set("from", q.From.Format(time.DateOnly))
	}
	if !q.To.IsZero() {
		// "to" is exclusive upstream
		args.Set("to", q.To.AddDate(0, 0, 1).Format(time.DateOnly))
	}

	dtos, err := getData[[]eventDTO](ctx, c, "/events", args)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(dtos))
	for _, d := range dtos {
		events = append(events, d.toDomain())
	}
	return events, nil
}

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	dtos, err := getData[[]serviceDTO](ctx, c, "/services", nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Service, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (c *Client) ListServiceGroups(ctx context.Context) ([]domain.ServiceGroup, error) {
	dtos, err := getData[[]serviceGroupDTO](ctx, c, "/servicegroups", nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServiceGroup, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.ServiceGroup{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (c *Client) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	dtos, err := getData[[]calendarDTO](ctx, c, "/calendars", nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Calendar, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.Calendar{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// WritableServiceGroupIDs reads churchservice / "edit servicegroup" from the
// API user's global permissions. A missing entry means none.
func (c *Client) WritableServiceGroupIDs(ctx context.Context) ([]int64, error) {
	perms, err := getData[permissionsDTO](ctx, c, "/permissions/global", nil)
	if err != nil {
		return nil, err
	}

	raw, ok := perms["churchservice"]["edit servicegroup"]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return []int64{}, nil
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("churchtools permissions: edit servicegroup: %w", err)
	}
	return ids, nil
}
