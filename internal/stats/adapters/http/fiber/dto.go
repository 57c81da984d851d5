package fiber

// ServiceCountResponse keeps the field names the bar renderer keys on.
type ServiceCountResponse struct {
	Person      string  `json:"person" example:"Alice"`
	ServiceName string  `json:"serviceName" example:"Sound"`
	Count       float64 `json:"count" example:"1"`
}

// DateCountResponse keeps the field names the line renderer keys on.
type DateCountResponse struct {
	Person string  `json:"person" example:"Alice"`
	Date   string  `json:"date" example:"2024-01-10"`
	Count  float64 `json:"count" example:"2"`
}

type ChartDatasetResponse struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartResponse struct {
	Labels   []string               `json:"labels"`
	Datasets []ChartDatasetResponse `json:"datasets"`
}

type StatsResponse struct {
	Mode         string                 `json:"mode" example:"SERVICE"`
	MinCount     float64                `json:"min_count" example:"1"`
	EventCount   int                    `json:"event_count"`
	ByService    []ServiceCountResponse `json:"by_service"`
	ByDate       []DateCountResponse    `json:"by_date"`
	ServiceChart ChartResponse          `json:"service_chart"`
	TimeChart    ChartResponse          `json:"time_chart"`
}

type ListedAssignmentResponse struct {
	ServiceName string `json:"serviceName"`
	Person      string `json:"person"`
}

type EventListingResponse struct {
	Name        string                     `json:"name"`
	StartDate   string                     `json:"startDate"`
	EndDate     string                     `json:"endDate"`
	Assignments []ListedAssignmentResponse `json:"assignments"`
}

type EventListResponse struct {
	Events []EventListingResponse `json:"events"`
}

type CalendarResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ServiceOptionResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" example:"Ton"`
	Label string `json:"label" example:"Sound"`
}

type ServiceGroupResponse struct {
	ID       int64                   `json:"id"`
	Name     string                  `json:"name"`
	Services []ServiceOptionResponse `json:"services"`
}

type FilterDefaultsResponse struct {
	From       string  `json:"from" example:"2024-01-01"`
	To         string  `json:"to" example:"2024-07-01"`
	ServiceIDs []int64 `json:"service_ids"`
	MinCount   float64 `json:"min_count" example:"5"`
}

type FilterOptionsResponse struct {
	Calendars               []CalendarResponse     `json:"calendars"`
	ServiceGroups           []ServiceGroupResponse `json:"service_groups"`
	WritableServiceGroupIDs []int64                `json:"writable_service_group_ids"`
	Defaults                FilterDefaultsResponse `json:"defaults"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid time range"`
}
