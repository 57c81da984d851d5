package domain

import (
	"fmt"
	"strings"
)

// AggregationMode decides how a person's simultaneous assignments within
// one event are weighted.
type AggregationMode string

const (
	// ModeService counts every assignment as 1.
	ModeService AggregationMode = "SERVICE"
	// ModeEvent splits a weight of 1 across a person's assignments in one event.
	ModeEvent AggregationMode = "EVENT"
)

const DefaultMode = ModeService

// ParseAggregationMode accepts "service" / "event" in any case; empty means DefaultMode.
func ParseAggregationMode(s string) (AggregationMode, error) {
	switch AggregationMode(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return DefaultMode, nil
	case ModeService:
		return ModeService, nil
	case ModeEvent:
		return ModeEvent, nil
	default:
		return "", fmt.Errorf("unknown aggregation mode %q", s)
	}
}

// Increment is the weight added per assignment when a person holds k
// relevant assignments in the same event.
func (m AggregationMode) Increment(k int) float64 {
	if m == ModeEvent && k > 0 {
		return 1 / float64(k)
	}
	return 1
}

// ServiceCount is a person × service total across all events.
type ServiceCount struct {
	Person      string
	ServiceName string
	Count       float64
}

// DateCount is a person × calendar day total (day is YYYY-MM-DD).
type DateCount struct {
	Person string
	Date   string
	Count  float64
}

type StackedChart struct {
	Labels   []string
	Datasets []ChartDataset
}

type LineChart struct {
	Labels   []string
	Datasets []ChartDataset
}

type ChartDataset struct {
	Label string
	Data  []float64
}

// Stats is everything the dashboard renders for one filter submission.
type Stats struct {
	Mode         AggregationMode
	MinCount     float64
	EventCount   int
	ByService    []ServiceCount
	ByDate       []DateCount
	ServiceChart StackedChart
	TimeChart    LineChart
}

type EventListing struct {
	Name        string
	StartDate   string
	EndDate     string
	Assignments []ListedAssignment
}

type ListedAssignment struct {
	ServiceName string
	Person      string
}

type FilterDefaults struct {
	From       string
	To         string
	ServiceIDs []int64
	MinCount   float64
}

type ServiceGroupOptions struct {
	Group    ServiceGroup
	Services []Service
}

type FilterOptions struct {
	Calendars               []Calendar
	ServiceGroups           []ServiceGroupOptions
	WritableServiceGroupIDs []int64
	Defaults                FilterDefaults
}
