package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"warehouse-shipping-service/internal/api/dto"
	"warehouse-shipping-service/internal/domain"
	"warehouse-shipping-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod writes 405 and reports false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// statusFor maps domain errors onto HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrLocationNotFound),
		errors.Is(err, domain.ErrUnknownVehicle):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNoRoute):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidWeight),
		errors.Is(err, domain.ErrInvalidCapacity),
		errors.Is(err, domain.ErrInvalidDistance),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrUnknownVehicleClass):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeDomainError answers with the mapped status. Typed errors keep their own
// message so clients see the weight or the route that was refused.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, status, "internal server error")
		return
	}

	msg := err.Error()
	var ce *domain.CapacityExceededError
	var ue *domain.UnreachableError
	switch {
	case errors.As(err, &ce):
		msg = ce.Error()
	case errors.As(err, &ue):
		msg = ue.Error()
	}
	writeError(w, r, status, msg)
}

func toRouteResponse(class domain.VehicleClass, p domain.PathResult) dto.RouteResponse {
	return dto.RouteResponse{
		VehicleClass: class.String(),
		Path:         p.Path,
		Distance:     p.Distance,
		Hops:         p.Hops(),
	}
}

func toShipmentResponse(s domain.Shipment) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		VehicleID:   s.VehicleID,
		Class:       s.Class.String(),
		Origin:      s.Origin,
		Destination: s.Destination,
		TotalWeight: s.TotalWeight,
		Route:       toRouteResponse(s.Class, s.Route),
	}
}
