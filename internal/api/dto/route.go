package dto

// Either VehicleID or VehicleClass selects who travels; VehicleID wins when both are set.
type ShortestRouteRequest struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	VehicleID    string `json:"vehicle_id"`
	VehicleClass string `json:"vehicle_class"`
}

type RouteResponse struct {
	VehicleClass string   `json:"vehicle_class"`
	Path         []string `json:"path"`
	Distance     float64  `json:"distance"`
	Hops         int      `json:"hops"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}
