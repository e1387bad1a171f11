// Package motorcycle models a two-tire vehicle with a front and a rear tire.
package motorcycle

import (
	"fmt"

	"github.com/golangdaddy/tirecheck/models/rng"
	"github.com/golangdaddy/tirecheck/models/tire"
)

// Delivery pressure range for new motorcycle tires, inclusive low and exclusive high
const (
	deliveryPressureLow  = 24
	deliveryPressureHigh = 34
)

// Motorcycle owns a front and a rear tire
type Motorcycle struct {
	Make  string
	Model string

	front tire.Tire
	rear  tire.Tire
}

// NewMotorcycle creates a motorcycle with clean tires at random pressure.
// The front tire draws from src before the rear.
func NewMotorcycle(make, model string, src rng.Source) *Motorcycle {
	return &Motorcycle{
		Make:  make,
		Model: model,
		front: tire.New(rng.Between(src, deliveryPressureLow, deliveryPressureHigh), true),
		rear:  tire.New(rng.Between(src, deliveryPressureLow, deliveryPressureHigh), true),
	}
}

// RideThroughMud dirties both tires. There is no way to clean them again.
func (m *Motorcycle) RideThroughMud() {
	m.front.SetClean(false)
	m.rear.SetClean(false)
}

// FrontTire returns a copy of the front tire
func (m *Motorcycle) FrontTire() tire.Tire {
	return m.front
}

// RearTire returns a copy of the rear tire
func (m *Motorcycle) RearTire() tire.Tire {
	return m.rear
}

// Wheels returns the number of wheels on a motorcycle
func (m *Motorcycle) Wheels() int {
	return 2
}

// Label returns the make and model
func (m *Motorcycle) Label() string {
	return m.Make + " " + m.Model
}

// String returns a string representation of the motorcycle
func (m *Motorcycle) String() string {
	return fmt.Sprintf("make='%s', model='%s', frontTire=%s, rearTire=%s", m.Make, m.Model, m.front, m.rear)
}
