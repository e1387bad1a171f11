package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/tirecheck/models/car"
	"github.com/golangdaddy/tirecheck/models/motorcycle"
	"github.com/golangdaddy/tirecheck/models/rng"
	"github.com/golangdaddy/tirecheck/models/tire"
)

func TestButton(t *testing.T) {
	rects := Button(10, 20, 100, 40, TireColor)

	require.Len(t, rects, 2)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 100, H: 40, Color: BorderColor}, rects[0])
	assert.Equal(t, Rect{X: 12, Y: 22, W: 96, H: 36, Color: TireColor}, rects[1])
}

func TestVehicleCar(t *testing.T) {
	c := car.NewCar("Toyota", "Camry", rng.Fixed(0))
	rects := Vehicle(c, 100, 200, 3)

	require.Len(t, rects, 6)
	assert.Equal(t, Rect{X: 100, Y: 200, W: 90, H: 150, Color: OutlineColor}, rects[0])
	assert.Equal(t, Rect{X: 106, Y: 206, W: 78, H: 138, Color: BodyColor}, rects[1])
	assert.Equal(t, Rect{X: 166, Y: 311, W: 18, H: 24, Color: LowColor}, rects[5])
	for _, r := range rects[2:] {
		assert.Equal(t, LowColor, r.Color)
	}
}

func TestVehicleMotorcycle(t *testing.T) {
	m := motorcycle.NewMotorcycle("Honda", "CB500F", rng.Fixed(8, 9))
	rects := Vehicle(m, 0, 0, 1)

	require.Len(t, rects, 4)
	assert.Equal(t, Rect{X: 10, Y: 0, W: 10, H: 50, Color: OutlineColor}, rects[0])
	assert.Equal(t, TireColor, rects[2].Color)
	assert.Equal(t, TireColor, rects[3].Color)

	m.RideThroughMud()
	rects = Vehicle(m, 0, 0, 1)
	assert.Equal(t, MudColor, rects[2].Color)
	assert.Equal(t, MudColor, rects[3].Color)
}

func TestVehicleUnknown(t *testing.T) {
	assert.Len(t, Vehicle(nil, 0, 0, 1), 2)
}

func TestWheelColor(t *testing.T) {
	assert.Equal(t, LowColor, WheelColor(tire.New(27, false)))
	assert.Equal(t, MudColor, WheelColor(tire.New(28, false)))
	assert.Equal(t, TireColor, WheelColor(tire.New(34, true)))
}
