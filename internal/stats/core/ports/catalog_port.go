package ports

import (
	"context"

	"duty-stats-service/internal/stats/core/domain"
)

// CatalogPort feeds the filter form.
type CatalogPort interface {
	ListCalendars(ctx context.Context) ([]domain.Calendar, error)
	ListServiceGroups(ctx context.Context) ([]domain.ServiceGroup, error)
	WritableServiceGroupIDs(ctx context.Context) ([]int64, error)
}
