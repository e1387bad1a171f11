package tire

import "fmt"

// Recommended pressure window in PSI
const (
	MinRecommendedPressure = 28
	MaxRecommendedPressure = 34
)

// Tire holds an air pressure reading and whether the tire is clean
type Tire struct {
	airPressure int  // PSI, any value accepted
	clean       bool // false once the tire has been muddied
}

// New creates a tire with the given pressure and cleanliness.
// The pressure is not validated.
func New(pressure int, clean bool) Tire {
	return Tire{
		airPressure: pressure,
		clean:       clean,
	}
}

// AirPressure returns the current pressure in PSI
func (t *Tire) AirPressure() int {
	return t.airPressure
}

// IsClean reports whether the tire is clean
func (t *Tire) IsClean() bool {
	return t.clean
}

// SetClean overwrites the cleanliness flag
func (t *Tire) SetClean(clean bool) {
	t.clean = clean
}

// NeedsAir reports whether the pressure is below the recommended minimum
func (t *Tire) NeedsAir() bool {
	return t.airPressure < MinRecommendedPressure
}

// CheckAirPressure refills an under-inflated tire straight to the recommended
// maximum. Tires at or above the minimum are left alone, including ones that
// are already over-inflated.
func (t *Tire) CheckAirPressure() {
	if t.NeedsAir() {
		t.airPressure = MaxRecommendedPressure
	}
}

// String returns a string representation of the tire
func (t Tire) String() string {
	return fmt.Sprintf("{airPressure=%d, clean=%t}", t.airPressure, t.clean)
}
