package domain

import (
	"fmt"
	"slices"
	"strings"
)

// VehicleClass is the closed set of vehicle kinds the network distinguishes.
type VehicleClass uint8

const (
	// Truck is the large-capacity class.
	Truck VehicleClass = iota
	// Van is the medium-capacity class.
	Van
	// Bike is the small, non-motorized class.
	Bike
)

var vehicleClassNames = [...]string{
	Truck: "TRUCK",
	Van:   "VAN",
	Bike:  "BIKE",
}

// VehicleClasses lists every class in declaration order.
func VehicleClasses() []VehicleClass {
	return []VehicleClass{Truck, Van, Bike}
}

func (c VehicleClass) String() string {
	if int(c) < len(vehicleClassNames) {
		return vehicleClassNames[c]
	}
	return fmt.Sprintf("VehicleClass(%d)", uint8(c))
}

func (c VehicleClass) valid() bool { return int(c) < len(vehicleClassNames) }

// ParseVehicleClass maps a class name (case-insensitive) to its VehicleClass.
func ParseVehicleClass(s string) (VehicleClass, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range vehicleClassNames {
		if n == name {
			return VehicleClass(i), nil
		}
	}
	return 0, fmt.Errorf("parse vehicle class %q: %w", s, ErrUnknownVehicleClass)
}

// CanTraverse reports whether the class may use an edge restricting the given classes.
func (c VehicleClass) CanTraverse(forbidden ClassSet) bool {
	return !forbidden.Contains(c)
}

// ClassSet is a set of vehicle classes. The zero value is the empty set.
type ClassSet uint8

// NewClassSet builds a set holding the given classes.
func NewClassSet(classes ...VehicleClass) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s |= 1 << c
	}
	return s
}

// ParseClassSet builds a set from class names. Unknown names are rejected.
func ParseClassSet(names []string) (ClassSet, error) {
	var s ClassSet
	for _, n := range names {
		c, err := ParseVehicleClass(n)
		if err != nil {
			return 0, err
		}
		s |= 1 << c
	}
	return s, nil
}

// Contains reports whether c is a member of the set.
func (s ClassSet) Contains(c VehicleClass) bool { return s&(1<<c) != 0 }

// Empty reports whether the set restricts no class.
func (s ClassSet) Empty() bool { return s == 0 }

// Classes returns the members in declaration order.
func (s ClassSet) Classes() []VehicleClass {
	out := make([]VehicleClass, 0, len(vehicleClassNames))
	for _, c := range VehicleClasses() {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the member names in declaration order; never nil.
func (s ClassSet) Names() []string {
	classes := s.Classes()
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		out = append(out, c.String())
	}
	return out
}

func (s ClassSet) String() string {
	return "{" + strings.Join(s.Names(), ",") + "}"
}

// A concrete vehicle of the fleet. ID is typically the licence plate.
// Capacity is expressed in kilograms.
type Vehicle struct {
	ID       string
	Capacity float64
	Class    VehicleClass
}

func NewVehicle(id string, capacity float64, class VehicleClass) (Vehicle, error) {
	v := Vehicle{ID: strings.TrimSpace(id), Capacity: capacity, Class: class}
	if err := v.Validate(); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

// Validate checks the vehicle invariants: known class and positive capacity.
func (v Vehicle) Validate() error {
	if !v.Class.valid() {
		return fmt.Errorf("vehicle %q: %w", v.ID, ErrUnknownVehicleClass)
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("vehicle %q: capacity=%g: %w", v.ID, v.Capacity, ErrInvalidCapacity)
	}
	return nil
}

// CanTraverse reports whether this vehicle may use an edge with the given restrictions.
func (v Vehicle) CanTraverse(forbidden ClassSet) bool {
	return v.Class.CanTraverse(forbidden)
}

// CanCarry reports whether a load of the given weight fits the vehicle.
func (v Vehicle) CanCarry(weight float64) bool {
	return weight <= v.Capacity
}

// Fleet indexes the available vehicles by id.
type Fleet struct {
	byID map[string]Vehicle
}

func NewFleet(vehicles []Vehicle) (*Fleet, error) {
	f := &Fleet{byID: make(map[string]Vehicle, len(vehicles))}
	for i, v := range vehicles {
		if v.ID == "" {
			return nil, fmt.Errorf("new fleet: vehicle at index %d: id must be non-empty", i)
		}
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("new fleet: %w", err)
		}
		if _, ok := f.byID[v.ID]; ok {
			return nil, fmt.Errorf("new fleet: duplicate vehicle id %q", v.ID)
		}
		f.byID[v.ID] = v
	}
	return f, nil
}

// DefaultFleet is the fleet used when the network file declares none.
func DefaultFleet() *Fleet {
	f, _ := NewFleet([]Vehicle{
		{ID: "TRK123", Capacity: 1000, Class: Truck},
		{ID: "VAN456", Capacity: 500, Class: Van},
		{ID: "BIK789", Capacity: 40, Class: Bike},
	})
	return f
}

// Get looks up a vehicle by id.
func (f *Fleet) Get(id string) (Vehicle, error) {
	v, ok := f.byID[strings.TrimSpace(id)]
	if !ok {
		return Vehicle{}, fmt.Errorf("vehicle %q: %w", id, ErrUnknownVehicle)
	}
	return v, nil
}

// List returns the vehicles sorted by id.
func (f *Fleet) List() []Vehicle {
	out := make([]Vehicle, 0, len(f.byID))
	for _, v := range f.byID {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b Vehicle) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func (f *Fleet) Len() int { return len(f.byID) }
