package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/tirecheck/models/rng"
)

func TestNewCarTiresAreDirtyAndLow(t *testing.T) {
	src := rng.New(1)
	for i := 0; i < 200; i++ {
		c := NewCar("Toyota", "Camry", src)
		tires := c.Tires()
		require.Len(t, tires, 4)
		for _, tr := range tires {
			assert.False(t, tr.IsClean())
			assert.Contains(t, []int{24, 25, 26}, tr.AirPressure())
		}
	}
}

func TestNewCarDrawsEachTireIndependently(t *testing.T) {
	c := NewCar("Ford", "F-150", rng.Fixed(0, 1, 2, 1))
	tires := c.Tires()

	assert.Equal(t, 24, tires[0].AirPressure())
	assert.Equal(t, 25, tires[1].AirPressure())
	assert.Equal(t, 26, tires[2].AirPressure())
	assert.Equal(t, 25, tires[3].AirPressure())
}

func TestTiresReturnsCopy(t *testing.T) {
	c := NewCar("Honda", "Civic", rng.Fixed(0))
	tires := c.Tires()
	tires[0].SetClean(true)
	tires[0].CheckAirPressure()

	again := c.Tires()
	assert.False(t, again[0].IsClean())
	assert.Equal(t, 24, again[0].AirPressure())
}

func TestWheelsAndLabel(t *testing.T) {
	c := NewCar("BMW", "3 Series", rng.Fixed(0))
	assert.Equal(t, 4, c.Wheels())
	assert.Equal(t, "BMW 3 Series", c.Label())
}

func TestString(t *testing.T) {
	c := NewCar("Audi", "A4", rng.Fixed(2, 0, 1, 2))
	want := "make='Audi', model='A4', tires=[" +
		"{airPressure=26, clean=false}, " +
		"{airPressure=24, clean=false}, " +
		"{airPressure=25, clean=false}, " +
		"{airPressure=26, clean=false}]"
	assert.Equal(t, want, c.String())
}
