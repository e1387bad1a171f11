package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrGarageFull   = errors.New("garage is at capacity")
	ErrNilVehicle   = errors.New("cannot add nil vehicle")
	ErrInvalidIndex = errors.New("invalid vehicle index")
)

// Garage represents an ordered collection of vehicles
type Garage struct {
	Vehicles []Vehicle
	Capacity int // Maximum number of vehicles (0 = unlimited)
	Selected int // Index of the active vehicle (-1 if none)
}

// NewGarage creates a new garage with optional capacity limit
// If capacity is 0, the garage has unlimited capacity
func NewGarage(capacity int) *Garage {
	return &Garage{
		Vehicles: make([]Vehicle, 0),
		Capacity: capacity,
		Selected: -1,
	}
}

// Add parks a vehicle in the garage. The first vehicle becomes active.
func (g *Garage) Add(v Vehicle) error {
	if g.IsFull() {
		return ErrGarageFull
	}
	if v == nil {
		return ErrNilVehicle
	}
	g.Vehicles = append(g.Vehicles, v)

	if len(g.Vehicles) == 1 {
		g.Selected = 0
	}
	return nil
}

// Remove takes a vehicle out of the garage by index
func (g *Garage) Remove(index int) error {
	if index < 0 || index >= len(g.Vehicles) {
		return errors.Wrapf(ErrInvalidIndex, "remove %d", index)
	}

	g.Vehicles = append(g.Vehicles[:index], g.Vehicles[index+1:]...)

	// Keep the active index pointing at the same vehicle where possible
	if g.Selected >= len(g.Vehicles) {
		g.Selected = len(g.Vehicles) - 1
	} else if g.Selected > index {
		g.Selected--
	}
	return nil
}

// RemoveActive takes the active vehicle out of the garage and returns it. The
// vehicle after it becomes active, or the new last one when it was last.
func (g *Garage) RemoveActive() (Vehicle, error) {
	v := g.Active()
	if v == nil {
		return nil, errors.Wrap(ErrInvalidIndex, "no active vehicle")
	}
	if err := g.Remove(g.Selected); err != nil {
		return nil, err
	}
	return v, nil
}

// Get retrieves a vehicle by index, nil if the index is invalid
func (g *Garage) Get(index int) Vehicle {
	if index < 0 || index >= len(g.Vehicles) {
		return nil
	}
	return g.Vehicles[index]
}

// Active returns the currently active vehicle, nil if none
func (g *Garage) Active() Vehicle {
	return g.Get(g.Selected)
}

// SetActive sets the active vehicle by index
func (g *Garage) SetActive(index int) error {
	if index < 0 || index >= len(g.Vehicles) {
		return errors.Wrapf(ErrInvalidIndex, "select %d", index)
	}
	g.Selected = index
	return nil
}

// Find returns the first vehicle with the given label and its index, or nil and -1
func (g *Garage) Find(label string) (Vehicle, int) {
	for i, v := range g.Vehicles {
		if v.Label() == label {
			return v, i
		}
	}
	return nil, -1
}

// All returns all vehicles in the garage
func (g *Garage) All() []Vehicle {
	return g.Vehicles
}

// Count returns the number of vehicles in the garage
func (g *Garage) Count() int {
	return len(g.Vehicles)
}

// IsFull returns true if the garage is at capacity
func (g *Garage) IsFull() bool {
	if g.Capacity == 0 {
		return false
	}
	return len(g.Vehicles) >= g.Capacity
}

// RemainingSlots returns the number of free slots, -1 if capacity is unlimited
func (g *Garage) RemainingSlots() int {
	if g.Capacity == 0 {
		return -1
	}
	remaining := g.Capacity - len(g.Vehicles)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// String returns a string representation of the garage
func (g *Garage) String() string {
	countStr := fmt.Sprintf("%d", len(g.Vehicles))
	if g.Capacity > 0 {
		countStr = fmt.Sprintf("%d/%d", len(g.Vehicles), g.Capacity)
	}

	activeStr := "none"
	if v := g.Active(); v != nil {
		activeStr = v.Label()
	}

	return fmt.Sprintf("Garage: %s vehicles, Active: %s", countStr, activeStr)
}
