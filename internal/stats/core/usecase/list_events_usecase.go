package usecase

import (
	"context"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

type ListEventsUseCase struct {
	source ports.EventSourcePort
}

func NewListEventsUseCase(source ports.EventSourcePort) *ListEventsUseCase {
	return &ListEventsUseCase{source: source}
}

// Execute returns the events in the window, each with only its assignments
// to the selected services.
func (uc *ListEventsUseCase) Execute(ctx context.Context, in WindowInput) ([]domain.EventListing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	events, lookup, err := fetchWindow(ctx, uc.source, in)
	if err != nil {
		return nil, err
	}

	relevant := domain.NewServiceIDSet(in.ServiceIDs...)
	out := make([]domain.EventListing, 0, len(events))
	for _, e := range events {
		listing := domain.EventListing{
			Name:        e.Name,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Assignments: []domain.ListedAssignment{},
		}
		for _, a := range e.Services {
			if a.ServiceID == nil || !relevant.Contains(*a.ServiceID) {
				continue
			}
			listing.Assignments = append(listing.Assignments, domain.ListedAssignment{
				ServiceName: lookup.NameOf(*a.ServiceID),
				Person:      a.PersonName(),
			})
		}
		out = append(out, listing)
	}
	return out, nil
}
