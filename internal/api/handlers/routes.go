package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"warehouse-shipping-service/internal/api/dto"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/services"
)

// RouteHandler answers shortest-path queries over the road network.
type RouteHandler struct {
	Graph *domain.RouteGraph
	Fleet *domain.Fleet
}

func (h *RouteHandler) Shortest(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ShortestRouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	start, end := strings.TrimSpace(req.Start), strings.TrimSpace(req.End)
	if start == "" || end == "" {
		writeError(w, r, http.StatusBadRequest, "start and end are required")
		return
	}

	vehicle, err := h.resolveVehicle(req)
	if err != nil {
		writeDomainError(w, r, "shortest route", err)
		return
	}

	if start != end {
		for _, loc := range []string{start, end} {
			if !h.Graph.HasLocation(loc) {
				writeDomainError(w, r, "shortest route", fmt.Errorf("location %q: %w", loc, domain.ErrLocationNotFound))
				return
			}
		}
	}

	path, err := services.FindRoute(h.Graph, start, end, vehicle)
	if err != nil {
		writeDomainError(w, r, "shortest route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(vehicle.Class, path))
}

// A class-only query stands in for any vehicle of that class.
func (h *RouteHandler) resolveVehicle(req dto.ShortestRouteRequest) (domain.Vehicle, error) {
	if id := strings.TrimSpace(req.VehicleID); id != "" {
		return h.Fleet.Get(id)
	}
	if strings.TrimSpace(req.VehicleClass) == "" {
		return domain.Vehicle{}, fmt.Errorf("vehicle_id or vehicle_class is required: %w", domain.ErrUnknownVehicleClass)
	}

	class, err := domain.ParseVehicleClass(req.VehicleClass)
	if err != nil {
		return domain.Vehicle{}, err
	}
	return domain.Vehicle{ID: class.String(), Capacity: 1, Class: class}, nil
}

// LocationHandler lists every location known to the network.
type LocationHandler struct {
	Graph *domain.RouteGraph
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LocationsResponse{Locations: h.Graph.Locations()})
}
