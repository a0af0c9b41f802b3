package dto

import (
	"encoding/json"
	"time"
)

// AddBoxRequest carries a box submission. Weight is a json.Number so
// "not a number" surfaces as a validation message instead of a decode
// failure, and clients may send it quoted or bare.
type AddBoxRequest struct {
	ReceiverName string      `json:"receiver_name"`
	Weight       json.Number `json:"weight"`
	BoxColor     string      `json:"box_color"`
	Country      string      `json:"country"`
}

// UpdateBoxRequest carries a partial update; nil fields are untouched.
type UpdateBoxRequest struct {
	ReceiverName *string  `json:"receiver_name"`
	Weight       *float64 `json:"weight"`
	BoxColor     *string  `json:"box_color"`
	Country      *string  `json:"country"`
}

type BoxResponse struct {
	ID                  string    `json:"id"`
	ReceiverName        string    `json:"receiver_name"`
	Weight              float64   `json:"weight"`
	BoxColor            string    `json:"box_color"`
	Country             string    `json:"country"`
	ShippingCost        float64   `json:"shipping_cost"`
	ShippingCostDisplay string    `json:"shipping_cost_display"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type StatsResponse struct {
	TotalBoxes       int     `json:"total_boxes"`
	TotalWeight      float64 `json:"total_weight"`
	TotalCost        float64 `json:"total_cost"`
	TotalCostDisplay string  `json:"total_cost_display"`
}

type ListBoxesResponse struct {
	Boxes   []BoxResponse `json:"boxes"`
	Stats   StatsResponse `json:"stats"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

// ValidationErrorResponse reports field-level failures for a rejected
// submission.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type ValidateRequest struct {
	ReceiverName string      `json:"receiver_name"`
	Weight       json.Number `json:"weight"`
	BoxColor     string      `json:"box_color"`
	Country      string      `json:"country"`
	Fields       []string    `json:"fields,omitempty"`
}

type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}
