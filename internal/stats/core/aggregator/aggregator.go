// Package aggregator turns events with service assignments into per-person
// counts. Both operations are pure: no I/O, no shared state, and missing or
// malformed upstream data is absorbed instead of reported.
package aggregator

import (
	"time"

	"duty-stats-service/internal/stats/core/domain"
)

const DefaultMinCount = 1.0

// personAssignments holds one person's relevant service ids within one event.
type personAssignments struct {
	person     string
	serviceIDs []int64
}

// eventDay returns the YYYY-MM-DD day of an event, false when the start date
// is absent or malformed.
func eventDay(e domain.Event) (string, bool) {
	if len(e.StartDate) < len("2006-01-02") {
		return "", false
	}
	day := e.StartDate[:10]
	if _, err := time.Parse(time.DateOnly, day); err != nil {
		return "", false
	}
	return day, true
}

// groupByPerson collects the relevant assignments of one event per person,
// persons in order of first appearance.
func groupByPerson(e domain.Event, relevant domain.ServiceIDSet) []personAssignments {
	var groups []personAssignments
	index := make(map[string]int)

	for _, a := range e.Services {
		if a.ServiceID == nil || !relevant.Contains(*a.ServiceID) {
			continue
		}
		person := a.PersonName()
		i, ok := index[person]
		if !ok {
			i = len(groups)
			index[person] = i
			groups = append(groups, personAssignments{person: person})
		}
		groups[i].serviceIDs = append(groups[i].serviceIDs, *a.ServiceID)
	}
	return groups
}

type personService struct {
	person  string
	service string
}

// CountPerPerson totals each person's relevant assignments per service name
// across all dated events and keeps only persons whose grand total reaches
// minCount. Under domain.ModeEvent every person contributes 1 per event,
// split evenly over their assignments in it.
func CountPerPerson(
	events []domain.Event,
	lookup domain.ServiceLookup,
	relevant domain.ServiceIDSet,
	minCount float64,
	mode domain.AggregationMode,
) []domain.ServiceCount {
	counts := make(map[personService]float64)
	var order []personService

	for _, e := range events {
		if _, ok := eventDay(e); !ok {
			continue
		}
		for _, g := range groupByPerson(e, relevant) {
			inc := mode.Increment(len(g.serviceIDs))
			for _, id := range g.serviceIDs {
				key := personService{person: g.person, service: lookup.NameOf(id)}
				if _, seen := counts[key]; !seen {
					order = append(order, key)
				}
				counts[key] += inc
			}
		}
	}

	totals := make(map[string]float64)
	for _, key := range order {
		totals[key.person] += counts[key]
	}

	out := make([]domain.ServiceCount, 0, len(order))
	for _, key := range order {
		if totals[key.person] < minCount {
			continue
		}
		out = append(out, domain.ServiceCount{
			Person:      key.person,
			ServiceName: key.service,
			Count:       counts[key],
		})
	}
	return out
}

// CumulativePersonTime totals each person's relevant assignments per event
// day. A person on several events of the same day gets one summed bucket for
// that day. Persons below minCount over all their days are dropped.
func CumulativePersonTime(
	events []domain.Event,
	relevant domain.ServiceIDSet,
	minCount float64,
	mode domain.AggregationMode,
) []domain.DateCount {
	counts := make(map[string]map[string]float64)
	var persons []string
	days := make(map[string][]string)

	for _, e := range events {
		day, ok := eventDay(e)
		if !ok {
			continue
		}
		for _, g := range groupByPerson(e, relevant) {
			byDay, ok := counts[g.person]
			if !ok {
				byDay = make(map[string]float64)
				counts[g.person] = byDay
				persons = append(persons, g.person)
			}
			if _, seen := byDay[day]; !seen {
				days[g.person] = append(days[g.person], day)
			}
			inc := mode.Increment(len(g.serviceIDs))
			for range g.serviceIDs {
				byDay[day] += inc
			}
		}
	}

	out := make([]domain.DateCount, 0)
	for _, person := range persons {
		var total float64
		for _, day := range days[person] {
			total += counts[person][day]
		}
		if total < minCount {
			continue
		}
		for _, day := range days[person] {
			out = append(out, domain.DateCount{
				Person: person,
				Date:   day,
				Count:  counts[person][day],
			})
		}
	}
	return out
}
