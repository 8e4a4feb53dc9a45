package dto

type ItemResponse struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitWeight float64 `json:"unit_weight_kg"`
	Category   string  `json:"category"`
}

type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

type VehicleResponse struct {
	ID       string  `json:"id"`
	Class    string  `json:"class"`
	Capacity float64 `json:"capacity_kg"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
