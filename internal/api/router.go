package api

import (
	"net/http"
	"warehouse-shipping-service/internal/api/handlers"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/metrics"
	"warehouse-shipping-service/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer needs. Reporter may be nil.
type Deps struct {
	Graph    *domain.RouteGraph
	Fleet    *domain.Fleet
	Ledger   ports.InventoryLedger
	Reporter ports.DispatchReporter
	Origin   string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	metrics.RegisterDefault()
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Graph: d.Graph, Fleet: d.Fleet}
	locationHandler := &handlers.LocationHandler{Graph: d.Graph}
	inventoryHandler := &handlers.InventoryHandler{Ledger: d.Ledger}
	vehicleHandler := &handlers.VehicleHandler{Fleet: d.Fleet}
	orderHandler := &handlers.OrderHandler{
		Graph:    d.Graph,
		Fleet:    d.Fleet,
		Ledger:   d.Ledger,
		Reporter: d.Reporter,
		Origin:   d.Origin,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/inventory", inventoryHandler.List)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/routes/shortest", routeHandler.Shortest)
	mux.HandleFunc("/quotes", orderHandler.Quote)
	mux.HandleFunc("/orders", orderHandler.Create)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
