package car

import (
	"fmt"
	"strings"

	"github.com/golangdaddy/tirecheck/models/rng"
	"github.com/golangdaddy/tirecheck/models/tire"
)

// Delivery pressure range for new car tires, inclusive low and exclusive high
const (
	deliveryPressureLow  = 24
	deliveryPressureHigh = 27
)

// TirePositions names the car's tires in the order they are stored
var TirePositions = [4]string{"front-left", "front-right", "rear-left", "rear-right"}

// Car represents a four-tire vehicle
type Car struct {
	Make  string // e.g., "Toyota", "Ferrari", "Tesla"
	Model string // e.g., "Camry", "F40", "Model S"

	tires [4]tire.Tire
}

// NewCar creates a car delivered with under-inflated, dirty tires.
// Each tire draws its own pressure from src.
func NewCar(make, model string, src rng.Source) *Car {
	c := &Car{
		Make:  make,
		Model: model,
	}
	for i := range c.tires {
		c.tires[i] = tire.New(rng.Between(src, deliveryPressureLow, deliveryPressureHigh), false)
	}
	return c
}

// Tires returns a copy of the car's tires
func (c *Car) Tires() [4]tire.Tire {
	return c.tires
}

// Wheels returns the number of wheels on a car
func (c *Car) Wheels() int {
	return len(c.tires)
}

// Label returns the make and model
func (c *Car) Label() string {
	return c.Make + " " + c.Model
}

// String returns a string representation of the car
func (c *Car) String() string {
	parts := make([]string, len(c.tires))
	for i := range c.tires {
		parts[i] = c.tires[i].String()
	}
	return fmt.Sprintf("make='%s', model='%s', tires=[%s]", c.Make, c.Model, strings.Join(parts, ", "))
}
