package network

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"warehouse-shipping-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type vehicleDoc struct {
	ID       string  `yaml:"id"`
	Class    string  `yaml:"class"`
	Capacity float64 `yaml:"capacity"`
}

type routeDoc struct {
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Distance  *float64 `yaml:"distance"`
	Forbidden []string `yaml:"forbidden"`
}

type networkDoc struct {
	Origin string       `yaml:"origin"`
	Fleet  []vehicleDoc `yaml:"fleet"`
	Routes []routeDoc   `yaml:"routes"`
}

// FileNetwork is a road network declared in a YAML file:
//
//	origin: Warehouse
//	fleet:
//	  - {id: VAN456, class: VAN, capacity: 500}
//	routes:
//	  - {from: Warehouse, to: Customer1, distance: 10, forbidden: [TRUCK]}
//
// It serves both the RouteSource and FleetSource ports.
type FileNetwork struct {
	origin   string
	routes   []domain.RouteSpec
	vehicles []domain.Vehicle
}

// LoadFile reads and validates a network file.
func LoadFile(path string) (*FileNetwork, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load network %q: %w", path, err)
	}

	n, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load network %q: %w", path, err)
	}
	return n, nil
}

// Parse decodes a network document. Unknown fields are rejected.
func Parse(b []byte) (*FileNetwork, error) {
	var doc networkDoc
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse network: %w", err)
	}

	n := &FileNetwork{origin: strings.TrimSpace(doc.Origin)}

	for i, r := range doc.Routes {
		if r.Distance == nil {
			return nil, fmt.Errorf("parse network: route #%d %s -> %s: distance is required", i+1, r.From, r.To)
		}
		forbidden, err := domain.ParseClassSet(r.Forbidden)
		if err != nil {
			return nil, fmt.Errorf("parse network: route #%d: %w", i+1, err)
		}

		spec := domain.RouteSpec{
			From:      strings.TrimSpace(r.From),
			To:        strings.TrimSpace(r.To),
			Distance:  *r.Distance,
			Forbidden: forbidden,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("parse network: route #%d: %w", i+1, err)
		}
		n.routes = append(n.routes, spec)
	}

	for i, v := range doc.Fleet {
		class, err := domain.ParseVehicleClass(v.Class)
		if err != nil {
			return nil, fmt.Errorf("parse network: vehicle #%d: %w", i+1, err)
		}
		vehicle, err := domain.NewVehicle(v.ID, v.Capacity, class)
		if err != nil {
			return nil, fmt.Errorf("parse network: vehicle #%d: %w", i+1, err)
		}
		n.vehicles = append(n.vehicles, vehicle)
	}

	return n, nil
}

// Origin is the location orders ship from; empty when the file does not set one.
func (n *FileNetwork) Origin() string { return n.origin }

func (n *FileNetwork) ListRoutes(context.Context) ([]domain.RouteSpec, error) {
	out := make([]domain.RouteSpec, len(n.routes))
	copy(out, n.routes)
	return out, nil
}

func (n *FileNetwork) ListVehicles(context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, len(n.vehicles))
	copy(out, n.vehicles)
	return out, nil
}
