package dto

import "time"

// Origin is optional and defaults to the warehouse location.
type OrderRequest struct {
	Item        string `json:"item"`
	Quantity    int    `json:"quantity"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	VehicleID   string `json:"vehicle_id"`
}

type ShipmentResponse struct {
	VehicleID   string        `json:"vehicle_id"`
	Class       string        `json:"vehicle_class"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	TotalWeight float64       `json:"total_weight_kg"`
	Route       RouteResponse `json:"route"`
}

type DispatchResponse struct {
	DispatchID string           `json:"dispatch_id"`
	Item       string           `json:"item"`
	Quantity   int              `json:"quantity"`
	CreatedAt  time.Time        `json:"created_at"`
	Shipment   ShipmentResponse `json:"shipment"`
}
