package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

// FilterDefaults are the selections a fresh filter form starts with.
type FilterDefaults struct {
	ServiceIDs      []int64
	TimeframeMonths int
	MinCount        float64
}

type GetFilterOptionsUseCase struct {
	catalog  ports.CatalogPort
	source   ports.EventSourcePort
	defaults FilterDefaults
	now      func() time.Time
}

func NewGetFilterOptionsUseCase(catalog ports.CatalogPort, source ports.EventSourcePort, defaults FilterDefaults) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{
		catalog:  catalog,
		source:   source,
		defaults: defaults,
		now:      time.Now,
	}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	var (
		calendars []domain.Calendar
		groups    []domain.ServiceGroup
		services  []domain.Service
		writable  []int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if calendars, err = uc.catalog.ListCalendars(gctx); err != nil {
			return fmt.Errorf("list calendars: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if groups, err = uc.catalog.ListServiceGroups(gctx); err != nil {
			return fmt.Errorf("list service groups: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if services, err = uc.source.ListServices(gctx); err != nil {
			return fmt.Errorf("list services: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if writable, err = uc.catalog.WritableServiceGroupIDs(gctx); err != nil {
			return fmt.Errorf("writable service groups: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if writable == nil {
		writable = []int64{}
	}

	return &domain.FilterOptions{
		Calendars:               calendars,
		ServiceGroups:           groupServices(groups, services),
		WritableServiceGroupIDs: writable,
		Defaults:                uc.defaultSelection(),
	}, nil
}

// groupServices buckets services by group id, ascending. Services without a
// group are skipped; groups unknown to the catalog get an empty name.
func groupServices(groups []domain.ServiceGroup, services []domain.Service) []domain.ServiceGroupOptions {
	names := make(map[int64]string, len(groups))
	for _, g := range groups {
		names[g.ID] = g.Name
	}

	byGroup := make(map[int64][]domain.Service)
	for _, s := range services {
		if s.ServiceGroupID == nil {
			continue
		}
		byGroup[*s.ServiceGroupID] = append(byGroup[*s.ServiceGroupID], s)
	}

	ids := make([]int64, 0, len(byGroup))
	for id := range byGroup {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.ServiceGroupOptions, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ServiceGroupOptions{
			Group:    domain.ServiceGroup{ID: id, Name: names[id]},
			Services: byGroup[id],
		})
	}
	return out
}

func (uc *GetFilterOptionsUseCase) defaultSelection() domain.FilterDefaults {
	now := uc.now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, uc.defaults.TimeframeMonths, 0)

	ids := uc.defaults.ServiceIDs
	if ids == nil {
		ids = []int64{}
	}

	return domain.FilterDefaults{
		From:       from.Format(time.DateOnly),
		To:         to.Format(time.DateOnly),
		ServiceIDs: ids,
		MinCount:   uc.defaults.MinCount,
	}
}
