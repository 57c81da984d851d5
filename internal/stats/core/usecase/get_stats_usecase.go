package usecase

import (
	"context"
	"log/slog"
	"math"

	"duty-stats-service/internal/stats/core/aggregator"
	"duty-stats-service/internal/stats/core/chart"
	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/ports"
)

type GetStatsInput struct {
	WindowInput

	MinCount *float64 // nil means aggregator.DefaultMinCount
	Mode     string   // "", "SERVICE", "EVENT"
}

type GetStatsUseCase struct {
	source    ports.EventSourcePort
	chartOpts chart.Options
	log       *slog.Logger
}

func NewGetStatsUseCase(source ports.EventSourcePort, chartOpts chart.Options, log *slog.Logger) *GetStatsUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &GetStatsUseCase{source: source, chartOpts: chartOpts, log: log}
}

// Execute validates the filter, loads the window and runs both aggregations.
func (uc *GetStatsUseCase) Execute(ctx context.Context, in GetStatsInput) (*domain.Stats, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	minCount := aggregator.DefaultMinCount
	if in.MinCount != nil {
		minCount = *in.MinCount
	}
	if minCount < 0 || math.IsNaN(minCount) || math.IsInf(minCount, 0) {
		return nil, ErrInvalidMinCount
	}

	mode, err := domain.ParseAggregationMode(in.Mode)
	if err != nil {
		return nil, ErrInvalidAggregationMode
	}

	events, lookup, err := fetchWindow(ctx, uc.source, in.WindowInput)
	if err != nil {
		return nil, err
	}

	relevant := domain.NewServiceIDSet(in.ServiceIDs...)
	byService := aggregator.CountPerPerson(events, lookup, relevant, minCount, mode)
	byDate := aggregator.CumulativePersonTime(events, relevant, minCount, mode)

	uc.log.DebugContext(ctx, "stats aggregated",
		slog.Any("services", in.ServiceIDs),
		slog.Int("events", len(events)),
		slog.String("mode", string(mode)),
		slog.Float64("min_count", minCount),
		slog.Int("service_points", len(byService)),
		slog.Int("date_points", len(byDate)),
	)

	return &domain.Stats{
		Mode:         mode,
		MinCount:     minCount,
		EventCount:   len(events),
		ByService:    byService,
		ByDate:       byDate,
		ServiceChart: chart.Stacked(byService, uc.chartOpts),
		TimeChart:    chart.Cumulative(byDate, uc.chartOpts),
	}, nil
}
