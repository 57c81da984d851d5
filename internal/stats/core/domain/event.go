package domain

// Event is a calendar entry with the people assigned to its services.
// StartDate is an ISO date or timestamp string; empty means absent.
type Event struct {
	Name       string
	StartDate  string
	EndDate    string
	CalendarID int64
	Services   []Assignment
}

// Assignment binds one person to one service within an event.
type Assignment struct {
	ServiceID *int64
	Name      *string
}

const UnknownLabel = "?"

// PersonName returns the assigned person's display name, or "?" when absent.
func (a Assignment) PersonName() string {
	if a.Name == nil {
		return UnknownLabel
	}
	return *a.Name
}

type Service struct {
	ID             int64
	Name           string
	NameTranslated string
	ServiceGroupID *int64
}

// Label is the name shown in filter forms: the translated name when the
// source provides one, the plain name otherwise. Assignments and counts
// always use Name.
func (s Service) Label() string {
	if s.NameTranslated != "" {
		return s.NameTranslated
	}
	return s.Name
}

type ServiceGroup struct {
	ID   int64
	Name string
}

type Calendar struct {
	ID   int64
	Name string
}

// ServiceLookup resolves service ids to their metadata.
type ServiceLookup map[int64]Service

func NewServiceLookup(services []Service) ServiceLookup {
	l := make(ServiceLookup, len(services))
	for _, s := range services {
		l[s.ID] = s
	}
	return l
}

// NameOf returns the display name of a service, "?" for unknown ids.
func (l ServiceLookup) NameOf(id int64) string {
	s, ok := l[id]
	if !ok {
		return UnknownLabel
	}
	return s.Name
}

// ServiceIDSet is the set of service ids an aggregation counts.
type ServiceIDSet map[int64]struct{}

func NewServiceIDSet(ids ...int64) ServiceIDSet {
	s := make(ServiceIDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s ServiceIDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}
