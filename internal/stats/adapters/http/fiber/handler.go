package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"duty-stats-service/internal/stats/core/domain"
	"duty-stats-service/internal/stats/core/usecase"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context, in usecase.GetStatsInput) (*domain.Stats, error)
}

type ListEventsUseCase interface {
	Execute(ctx context.Context, in usecase.WindowInput) ([]domain.EventListing, error)
}

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}

type StatsHandler struct {
	statsUC   GetStatsUseCase
	eventsUC  ListEventsUseCase
	optionsUC GetFilterOptionsUseCase
	log       *slog.Logger
}

func NewStatsHandler(statsUC GetStatsUseCase, eventsUC ListEventsUseCase, optionsUC GetFilterOptionsUseCase, log *slog.Logger) *StatsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StatsHandler{statsUC: statsUC, eventsUC: eventsUC, optionsUC: optionsUC, log: log}
}

// Register mounts the handler's routes.
func (h *StatsHandler) Register(r fiber.Router) {
	r.Get("/stats", h.GetStats)
	r.Get("/events", h.ListEvents)
	r.Get("/filters/options", h.GetFilterOptions)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}

func (h *StatsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatsQuery),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrInvalidMinCount),
		errors.Is(err, usecase.ErrInvalidAggregationMode):
		return badRequest(c, err.Error())
	default:
		h.log.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// GetStats godoc
// @Summary Aggregate service assignments per person
// @Description Counts per person and service and per person and day, plus chart datasets
// @Tags Stats
// @Produce json
// @Param calendars query string true "Calendar ids, comma separated"
// @Param services query string true "Service ids, comma separated"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day, inclusive (YYYY-MM-DD)"
// @Param min_count query number false "Minimum total per person (default 1)"
// @Param mode query string false "SERVICE | EVENT (default SERVICE)"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	window, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.GetStatsInput{
		WindowInput: window,
		Mode:        c.Query("mode", ""),
	}
	if s := c.Query("min_count", ""); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return badRequest(c, "invalid 'min_count' parameter")
		}
		in.MinCount = &v
	}

	res, err := h.statsUC.Execute(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}

	resp := StatsResponse{
		Mode:         string(res.Mode),
		MinCount:     res.MinCount,
		EventCount:   res.EventCount,
		ByService:    make([]ServiceCountResponse, 0, len(res.ByService)),
		ByDate:       make([]DateCountResponse, 0, len(res.ByDate)),
		ServiceChart: toChartResponse(res.ServiceChart.Labels, res.ServiceChart.Datasets),
		TimeChart:    toChartResponse(res.TimeChart.Labels, res.TimeChart.Datasets),
	}
	for _, p := range res.ByService {
		resp.ByService = append(resp.ByService, ServiceCountResponse{
			Person:      p.Person,
			ServiceName: p.ServiceName,
			Count:       p.Count,
		})
	}
	for _, p := range res.ByDate {
		resp.ByDate = append(resp.ByDate, DateCountResponse{
			Person: p.Person,
			Date:   p.Date,
			Count:  p.Count,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func toChartResponse(labels []string, datasets []domain.ChartDataset) ChartResponse {
	out := ChartResponse{
		Labels:   labels,
		Datasets: make([]ChartDatasetResponse, 0, len(datasets)),
	}
	if out.Labels == nil {
		out.Labels = []string{}
	}
	for _, d := range datasets {
		out.Datasets = append(out.Datasets, ChartDatasetResponse{Label: d.Label, Data: d.Data})
	}
	return out
}

// ListEvents godoc
// @Summary List events with their selected service assignments
// @Tags Events
// @Produce json
// @Param calendars query string true "Calendar ids, comma separated"
// @Param services query string true "Service ids, comma separated"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {object} EventListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func (h *StatsHandler) ListEvents(c *fiber.Ctx) error {
	window, err := parseWindow(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	events, err := h.eventsUC.Execute(c.UserContext(), window)
	if err != nil {
		return h.fail(c, err)
	}

	resp := EventListResponse{Events: make([]EventListingResponse, 0, len(events))}
	for _, e := range events {
		item := EventListingResponse{
			Name:        e.Name,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Assignments: make([]ListedAssignmentResponse, 0, len(e.Assignments)),
		}
		for _, a := range e.Assignments {
			item.Assignments = append(item.Assignments, ListedAssignmentResponse{
				ServiceName: a.ServiceName,
				Person:      a.Person,
			})
		}
		resp.Events = append(resp.Events, item)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetFilterOptions godoc
// @Summary Filter form options
// @Description Calendars, service groups with services, writable groups and default selections
// @Tags Filters
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /filters/options [get]
func (h *StatsHandler) GetFilterOptions(c *fiber.Ctx) error {
	opts, err := h.optionsUC.Execute(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	resp := FilterOptionsResponse{
		Calendars:               make([]CalendarResponse, 0, len(opts.Calendars)),
		ServiceGroups:           make([]ServiceGroupResponse, 0, len(opts.ServiceGroups)),
		WritableServiceGroupIDs: opts.WritableServiceGroupIDs,
		Defaults: FilterDefaultsResponse{
			From:       opts.Defaults.From,
			To:         opts.Defaults.To,
			ServiceIDs: opts.Defaults.ServiceIDs,
			MinCount:   opts.Defaults.MinCount,
		},
	}
	for _, cal := range opts.Calendars {
		resp.Calendars = append(resp.Calendars, CalendarResponse{ID: cal.ID, Name: cal.Name})
	}
	for _, g := range opts.ServiceGroups {
		group := ServiceGroupResponse{
			ID:       g.Group.ID,
			Name:     g.Group.Name,
			Services: make([]ServiceOptionResponse, 0, len(g.Services)),
		}
		for _, s := range g.Services {
			group.Services = append(group.Services, ServiceOptionResponse{ID: s.ID, Name: s.Name, Label: s.Label()})
		}
		resp.ServiceGroups = append(resp.ServiceGroups, group)
	}

	return c.Status(http.StatusOK).JSON(resp)
}
