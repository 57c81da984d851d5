package churchtools

import (
	"bytes"
	"encoding/json"
	"strconv"

	"duty-stats-service/internal/stats/core/domain"
)

// flexID accepts ids sent either as numbers or as numeric strings
// (calendar.domainIdentifier is a string).
type flexID int64

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*f = flexID(v)
	return nil
}

type domainRef struct {
	DomainType       string `json:"domainType"`
	DomainIdentifier flexID `json:"domainIdentifier"`
}

type eventDTO struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	StartDate     string            `json:"startDate"`
	EndDate       string            `json:"endDate"`
	Calendar      *domainRef        `json:"calendar"`
	EventServices []eventServiceDTO `json:"eventServices"`
}

type eventServiceDTO struct {
	ServiceID *int64  `json:"serviceId"`
	Name      *string `json:"name"`
}

type serviceDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	NameTranslated string `json:"nameTranslated"`
	ServiceGroupID *int64 `json:"serviceGroupId"`
}

type serviceGroupDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type calendarDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// permissionsDTO is module -> permission -> value; values differ per permission.
type permissionsDTO map[string]map[string]json.RawMessage

func (d eventDTO) toDomain() domain.Event {
	e := domain.Event{
		Name:      d.Name,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Services:  make([]domain.Assignment, 0, len(d.EventServices)),
	}
	if d.Calendar != nil {
		e.CalendarID = int64(d.Calendar.DomainIdentifier)
	}
	for _, s := range d.EventServices {
		e.Services = append(e.Services, domain.Assignment{ServiceID: s.ServiceID, Name: s.Name})
	}
	return e
}

func (d serviceDTO) toDomain() domain.Service {
	return domain.Service{
		ID:             d.ID,
		Name:           d.Name,
		NameTranslated: d.NameTranslated,
		ServiceGroupID: d.ServiceGroupID,
	}
}
