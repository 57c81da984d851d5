package fiber

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"duty-stats-service/internal/stats/core/usecase"
)

// parseIDList parses "2,3, 7". Empty input yields nil.
func parseIDList(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseWindow reads calendars, services, from and to. Days are UTC and "to"
// covers its whole day.
func parseWindow(c *fiber.Ctx) (usecase.WindowInput, error) {
	var in usecase.WindowInput

	calendars, err := parseIDList(c.Query("calendars"))
	if err != nil {
		return in, fmt.Errorf("calendars: %w", err)
	}
	services, err := parseIDList(c.Query("services"))
	if err != nil {
		return in, fmt.Errorf("services: %w", err)
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		return in, fmt.Errorf("from and to are required")
	}
	from, err := time.Parse(time.DateOnly, fromStr)
	if err != nil {
		return in, fmt.Errorf("invalid 'from' parameter")
	}
	to, err := time.Parse(time.DateOnly, toStr)
	if err != nil {
		return in, fmt.Errorf("invalid 'to' parameter")
	}

	in.CalendarIDs = calendars
	in.ServiceIDs = services
	in.From = from
	in.To = to.Add(24*time.Hour - time.Nanosecond)
	return in, nil
}
