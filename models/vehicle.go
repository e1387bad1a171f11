package models

import (
	"github.com/golangdaddy/tirecheck/models/car"
	"github.com/golangdaddy/tirecheck/models/motorcycle"
	"github.com/golangdaddy/tirecheck/models/tire"
)

// Vehicle is anything with tires that can be parked in a garage
type Vehicle interface {
	Wheels() int
	Label() string // make and model
	String() string
}

var (
	_ Vehicle = (*car.Car)(nil)
	_ Vehicle = (*motorcycle.Motorcycle)(nil)
)

// Mounted is a tire together with where it sits on its vehicle
type Mounted struct {
	Position string
	Tire     tire.Tire
}

// MountedTires lists a vehicle's tires front to back. Vehicles of unknown
// type have none.
func MountedTires(v Vehicle) []Mounted {
	switch veh := v.(type) {
	case *car.Car:
		tires := veh.Tires()
		mounted := make([]Mounted, len(tires))
		for i := range tires {
			mounted[i] = Mounted{Position: car.TirePositions[i], Tire: tires[i]}
		}
		return mounted
	case *motorcycle.Motorcycle:
		return []Mounted{
			{Position: "front", Tire: veh.FrontTire()},
			{Position: "rear", Tire: veh.RearTire()},
		}
	}
	return nil
}
