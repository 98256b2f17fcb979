package dto

import "time"

type CreateItemRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

type UpdateItemRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=120"`
}

type CheckItemRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

type ItemResponse struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	Name      string    `json:"name"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}
