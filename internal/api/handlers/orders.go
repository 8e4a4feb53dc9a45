package handlers

import (
	"net/http"
	"strings"
	"warehouse-shipping-service/internal/api/dto"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/ports"
	"warehouse-shipping-service/internal/services"
)

// OrderHandler quotes and dispatches orders from the warehouse.
type OrderHandler struct {
	Graph    *domain.RouteGraph
	Fleet    *domain.Fleet
	Ledger   ports.InventoryLedger
	Reporter ports.DispatchReporter
	Origin   string
}

type parsedOrder struct {
	item        string
	quantity    int
	origin      string
	destination string
	vehicle     domain.Vehicle
}

func (h *OrderHandler) parse(w http.ResponseWriter, r *http.Request) (parsedOrder, bool) {
	var req dto.OrderRequest
	if !decodeJSON(w, r, &req) {
		return parsedOrder{}, false
	}

	o := parsedOrder{
		item:        strings.TrimSpace(req.Item),
		quantity:    req.Quantity,
		origin:      strings.TrimSpace(req.Origin),
		destination: strings.TrimSpace(req.Destination),
	}
	if o.origin == "" {
		o.origin = h.Origin
	}

	switch {
	case o.item == "":
		writeError(w, r, http.StatusBadRequest, "item is required")
		return parsedOrder{}, false
	case o.quantity <= 0:
		writeError(w, r, http.StatusBadRequest, "quantity must be positive")
		return parsedOrder{}, false
	case o.destination == "":
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return parsedOrder{}, false
	case o.origin == "":
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return parsedOrder{}, false
	case strings.TrimSpace(req.VehicleID) == "":
		writeError(w, r, http.StatusBadRequest, "vehicle_id is required")
		return parsedOrder{}, false
	}

	v, err := h.Fleet.Get(strings.TrimSpace(req.VehicleID))
	if err != nil {
		writeDomainError(w, r, "order", err)
		return parsedOrder{}, false
	}
	o.vehicle = v

	return o, true
}

// Quote prices an order without reserving stock: weight check, then route.
func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	o, ok := h.parse(w, r)
	if !ok {
		return
	}

	unitWeight, err := h.Ledger.ItemWeight(r.Context(), o.item)
	if err != nil {
		writeDomainError(w, r, "quote", err)
		return
	}

	shipment, err := services.PlanShipment(h.Graph, o.origin, o.destination, o.vehicle, unitWeight, o.quantity)
	if err != nil {
		writeDomainError(w, r, "quote", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toShipmentResponse(shipment))
}

// Create dispatches an order: capacity check, reservation, routing.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	o, ok := h.parse(w, r)
	if !ok {
		return
	}

	d, err := services.DispatchOrder(r.Context(), services.DispatchOrderRequest{
		Item:        o.item,
		Quantity:    o.quantity,
		Origin:      o.origin,
		Destination: o.destination,
		Vehicle:     o.vehicle,
	}, h.Graph, h.Ledger, h.Reporter)
	if err != nil {
		writeDomainError(w, r, "dispatch order", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.DispatchResponse{
		DispatchID: d.ID,
		Item:       d.Item,
		Quantity:   d.Quantity,
		CreatedAt:  d.CreatedAt,
		Shipment:   toShipmentResponse(d.Shipment),
	})
}
