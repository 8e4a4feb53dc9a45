package handlers

import (
	"log"
	"net/http"
	"warehouse-shipping-service/internal/api/dto"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/ports"
)

// InventoryHandler exposes read-only stock listing.
type InventoryHandler struct {
	Ledger ports.InventoryLedger
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	lister, ok := h.Ledger.(ports.InventoryLister)
	if !ok {
		writeError(w, r, http.StatusNotImplemented, "inventory listing not supported by this ledger")
		return
	}

	items, err := lister.ListItems(r.Context())
	if err != nil {
		log.Printf("list items failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListItemsResponse{Items: make([]dto.ItemResponse, 0, len(items))}
	for _, it := range items {
		res.Items = append(res.Items, dto.ItemResponse{
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitWeight: it.UnitWeight,
			Category:   string(it.Category),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

type VehicleHandler struct {
	Fleet *domain.Fleet
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	vehicles := h.Fleet.List()
	res := dto.ListVehiclesResponse{Vehicles: make([]dto.VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			ID:       v.ID,
			Class:    v.Class.String(),
			Capacity: v.Capacity,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
