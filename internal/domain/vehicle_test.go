package domain

import (
	"errors"
	"testing"
)

func TestVehicleCanTraverse(t *testing.T) {
	forbidden := NewClassSet(Truck, Bike)

	cases := []struct {
		class VehicleClass
		want  bool
	}{
		{Truck, false},
		{Van, true},
		{Bike, false},
	}

	for _, tc := range cases {
		v := Vehicle{ID: "x", Capacity: 1, Class: tc.class}
		if got := v.CanTraverse(forbidden); got != tc.want {
			t.Errorf("%s.CanTraverse(%s) = %v, want %v", tc.class, forbidden, got, tc.want)
		}
	}

	// an unrestricted edge is open to every class
	for _, c := range VehicleClasses() {
		if !c.CanTraverse(ClassSet(0)) {
			t.Errorf("%s should traverse an unrestricted edge", c)
		}
	}
}

func TestParseClassSet(t *testing.T) {
	s, err := ParseClassSet([]string{"truck", " BIKE "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Contains(Truck) || !s.Contains(Bike) || s.Contains(Van) {
		t.Fatalf("set = %s, want {TRUCK,BIKE}", s)
	}
	if s.String() != "{TRUCK,BIKE}" {
		t.Fatalf("String() = %q", s.String())
	}

	if _, err := ParseClassSet([]string{"HOVERCRAFT"}); !errors.Is(err, ErrUnknownVehicleClass) {
		t.Fatalf("err = %v, want ErrUnknownVehicleClass", err)
	}

	empty, err := ParseClassSet(nil)
	if err != nil || !empty.Empty() {
		t.Fatalf("nil names: set=%s err=%v", empty, err)
	}
	if names := empty.Names(); names == nil || len(names) != 0 {
		t.Fatalf("Names() on empty set = %#v, want empty non-nil", names)
	}
}

func TestNewVehicleRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []float64{0, -5} {
		if _, err := NewVehicle("VAN1", capacity, Van); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("capacity=%g: err = %v, want ErrInvalidCapacity", capacity, err)
		}
	}

	if _, err := NewVehicle("X", 10, VehicleClass(9)); !errors.Is(err, ErrUnknownVehicleClass) {
		t.Errorf("err = %v, want ErrUnknownVehicleClass", err)
	}
}

func TestFleet(t *testing.T) {
	f, err := NewFleet([]Vehicle{
		{ID: "VAN456", Capacity: 500, Class: Van},
		{ID: "TRK123", Capacity: 1000, Class: Truck},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := f.Get("TRK123")
	if err != nil {
		t.Fatalf("get TRK123: %v", err)
	}
	if v.Class != Truck || v.Capacity != 1000 {
		t.Fatalf("got %+v", v)
	}

	if _, err := f.Get("NOPE"); !errors.Is(err, ErrUnknownVehicle) {
		t.Fatalf("err = %v, want ErrUnknownVehicle", err)
	}

	list := f.List()
	if len(list) != 2 || list[0].ID != "TRK123" || list[1].ID != "VAN456" {
		t.Fatalf("List() = %+v, want sorted by id", list)
	}

	_, err = NewFleet([]Vehicle{
		{ID: "A", Capacity: 1, Class: Van},
		{ID: "A", Capacity: 2, Class: Van},
	})
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestDefaultFleetMatchesWarehouseVehicles(t *testing.T) {
	f := DefaultFleet()
	if f.Len() != 3 {
		t.Fatalf("len = %d, want 3", f.Len())
	}
	van, err := f.Get("VAN456")
	if err != nil || van.Capacity != 500 || van.Class != Van {
		t.Fatalf("VAN456 = %+v err=%v", van, err)
	}
}
