// Package chart shapes aggregated data points into the label/dataset form the
// dashboard's bar and line renderers consume.
package chart

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"duty-stats-service/internal/stats/core/domain"
)

// Options control label ordering. With the zero Locale (language.Und) persons
// keep the order in which they first appear in the data points.
type Options struct {
	Locale language.Tag
}

// orderPersons builds a collator per call: a collate.Collator keeps sort
// buffers and must not be shared between goroutines.
func (o Options) orderPersons(persons []string) []string {
	if o.Locale == language.Und {
		return persons
	}
	sorted := append([]string(nil), persons...)
	collate.New(o.Locale).SortStrings(sorted)
	return sorted
}

func uniq(n int, at func(i int) string) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := at(i)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Stacked builds a stacked bar chart: one label per person, one dataset per
// service name. Cells without a data point are 0.
func Stacked(points []domain.ServiceCount, opts Options) domain.StackedChart {
	persons := opts.orderPersons(uniq(len(points), func(i int) string { return points[i].Person }))
	services := uniq(len(points), func(i int) string { return points[i].ServiceName })

	personIdx := make(map[string]int, len(persons))
	for i, p := range persons {
		personIdx[p] = i
	}
	serviceIdx := make(map[string]int, len(services))
	datasets := make([]domain.ChartDataset, len(services))
	for i, s := range services {
		serviceIdx[s] = i
		datasets[i] = domain.ChartDataset{Label: s, Data: make([]float64, len(persons))}
	}

	for _, p := range points {
		datasets[serviceIdx[p.ServiceName]].Data[personIdx[p.Person]] += p.Count
	}

	return domain.StackedChart{Labels: persons, Datasets: datasets}
}

// Cumulative builds a line chart: labels are the distinct days ascending and
// each person's series is the running total of their per-day counts.
func Cumulative(points []domain.DateCount, opts Options) domain.LineChart {
	persons := opts.orderPersons(uniq(len(points), func(i int) string { return points[i].Person }))
	dates := uniq(len(points), func(i int) string { return points[i].Date })
	sort.Strings(dates)

	perDay := make(map[string]map[string]float64, len(persons))
	for _, p := range points {
		m, ok := perDay[p.Person]
		if !ok {
			m = make(map[string]float64)
			perDay[p.Person] = m
		}
		m[p.Date] += p.Count
	}

	datasets := make([]domain.ChartDataset, 0, len(persons))
	for _, person := range persons {
		data := make([]float64, len(dates))
		var running float64
		for i, d := range dates {
			running += perDay[person][d]
			data[i] = running
		}
		datasets = append(datasets, domain.ChartDataset{Label: person, Data: data})
	}

	return domain.LineChart{Labels: dates, Datasets: datasets}
}
