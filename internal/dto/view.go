package dto

// OccurrenceResponse is one concrete calendar-day row of the view.
type OccurrenceResponse struct {
	Event        EventResponse  `json:"event"`
	DisplayDate  string         `json:"display_date"`
	IsOccurrence bool           `json:"is_occurrence"`
	Items        []ItemResponse `json:"items"`
}

type DateGroupResponse struct {
	Date        string               `json:"date"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

type ViewResponse struct {
	Groups []DateGroupResponse `json:"groups"`
}
