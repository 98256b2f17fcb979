package dto

import "time"

// RecurrenceDTO is the wire form of a recurrence rule. DaysOfWeek is
// required to be non-empty only for kind "weekly"; that rule is checked
// in the service layer, not by binding tags.
type RecurrenceDTO struct {
	Kind       string   `json:"kind" binding:"required,oneof=none daily weekly"`
	DaysOfWeek []string `json:"days_of_week" binding:"omitempty,dive,oneof=SU MO TU WE TH FR SA"`
}

type CreateEventRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
	// Date is optional: empty on a non-recurring event defaults to today.
	Date       string        `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Recurrence RecurrenceDTO `json:"recurrence" binding:"required"`
}

type UpdateEventRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=120"`
	Date *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type EventResponse struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Date       string        `json:"date,omitempty"`
	Recurrence RecurrenceDTO `json:"recurrence"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type ListEventsResponse struct {
	Items []EventResponse `json:"items"`
}
