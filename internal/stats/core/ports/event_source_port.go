package ports

import (
	"context"
	"time"

	"duty-stats-service/internal/stats/core/domain"
)

type EventQuery struct {
	From        time.Time
	To          time.Time
	CalendarIDs []int64 // optional; sources may ignore it
}

type EventSourcePort interface {
	// ListEvents returns events with their service assignments. Sources may
	// return more than asked for; callers filter again.
	ListEvents(ctx context.Context, q EventQuery) ([]domain.Event, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
}
