package models

import (
	"github.com/pkg/errors"

	"github.com/golangdaddy/tirecheck/models/car"
	"github.com/golangdaddy/tirecheck/models/motorcycle"
	"github.com/golangdaddy/tirecheck/models/rng"
)

// NewInventory parks the demo lineup in a garage of the given capacity
// (0 = unlimited). Every vehicle draws its tire pressures from src, in lineup
// order. A garage too small for the lineup is an error.
func NewInventory(src rng.Source, capacity int) (*Garage, error) {
	lineup := []Vehicle{
		car.NewCar("Toyota", "Camry", src),
		car.NewCar("Ferrari", "Testarossa", src),
		car.NewCar("Ford", "F-150", src),
		motorcycle.NewMotorcycle("Honda", "CB500F", src),
		motorcycle.NewMotorcycle("Ducati", "Monster", src),
		car.NewCar("Chevrolet", "Impala", src),
		motorcycle.NewMotorcycle("Triumph", "Bonneville", src),
	}

	g := NewGarage(capacity)
	for _, v := range lineup {
		if err := g.Add(v); err != nil {
			return nil, errors.Wrapf(err, "park %s", v.Label())
		}
	}
	return g, nil
}
