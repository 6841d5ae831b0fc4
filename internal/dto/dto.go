// Package dto holds the wire shapes of the REST API.
package dto

import "time"

type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type TrainDetails struct {
	TrainNo     string     `json:"train_no"`
	Coach       string     `json:"coach"`
	Seat        string     `json:"seat"`
	StationCode string     `json:"station_code"`
	ETA         *time.Time `json:"eta,omitempty"`
}

type Order struct {
	ID                  string       `json:"id"`
	UserID              string       `json:"user_id"`
	RestaurantID        string       `json:"restaurant_id"`
	Status              string       `json:"status"`
	Total               float64      `json:"total"`
	Items               []LineItem   `json:"items"`
	TrainDetails        TrainDetails `json:"train_details"`
	DeliveryLocation    string       `json:"delivery_location,omitempty"`
	SpecialInstructions string       `json:"special_instructions,omitempty"`
	PaymentMethod       string       `json:"payment_method"`
	PaymentStatus       string       `json:"payment_status"`
	DeliveryPartnerID   *string      `json:"delivery_partner_id,omitempty"`
	DeliveryTime        *time.Time   `json:"delivery_time,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

type DeliveryPartner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	IsAvailable bool   `json:"is_available"`
}

type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
}

type CartItem struct {
	ItemID         string  `json:"item_id"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	StationCode    string  `json:"station_code"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
}

type CheckoutRequest struct {
	UserID              string     `json:"user_id"`
	Items               []CartItem `json:"items"`
	TrainNo             string     `json:"train_no"`
	Coach               string     `json:"coach"`
	Seat                string     `json:"seat"`
	StationCode         string     `json:"station_code"`
	DeliveryLocation    string     `json:"delivery_location,omitempty"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	PaymentMethod       string     `json:"payment_method"`
}

type CheckoutResponse struct {
	Orders []Order `json:"orders"`
}

// CheckoutPartialFailure is returned with 207 when some restaurant groups
// were placed before one failed.
type CheckoutPartialFailure struct {
	CreatedOrderIDs    []string `json:"created_order_ids"`
	FailedRestaurantID string   `json:"failed_restaurant_id"`
	Error              string   `json:"error"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type TrackResponse struct {
	Order            Order            `json:"order"`
	Partner          *DeliveryPartner `json:"partner,omitempty"`
	Rank             int              `json:"rank,omitempty"`
	RemainingSeconds int64            `json:"remaining_seconds"`
	Calculating      bool             `json:"calculating"`
	FetchedAt        time.Time        `json:"fetched_at"`
}

type AssignResponse struct {
	OrderID string          `json:"order_id"`
	Partner DeliveryPartner `json:"partner"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
