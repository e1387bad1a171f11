package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestInflateRefillsLowTire(t *testing.T) {
	t.Parallel()

	out, logs, err := run(t, "inflate", "20", "--clean")
	require.NoError(t, err)

	assert.Equal(t, "before: {airPressure=20, clean=true}\nafter:  {airPressure=34, clean=true}\n", out)
	assert.Contains(t, logs, "tire refilled")
}

func TestInflateLeavesBoundaryAlone(t *testing.T) {
	t.Parallel()

	out, logs, err := run(t, "inflate", "28")
	require.NoError(t, err)

	assert.Equal(t, "before: {airPressure=28, clean=false}\nafter:  {airPressure=28, clean=false}\n", out)
	assert.NotContains(t, logs, "tire refilled")
}

func TestInflateNegative(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "inflate", "--", "-5")
	require.NoError(t, err)
	assert.Contains(t, out, "after:  {airPressure=34, clean=false}")
}

func TestInflateRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "inflate", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `pressure "lots"`)
}

func TestCarReport(t *testing.T) {
	t.Parallel()

	out, logs, err := run(t, "--seed", "5", "car", "Toyota", "Camry", "--report")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "make='Toyota', model='Camry', tires=["))
	assert.Equal(t, 4, strings.Count(lines[0], "clean=false"))
	for i, pos := range []string{"front-left", "front-right", "rear-left", "rear-right"} {
		assert.True(t, strings.HasPrefix(lines[i+1], pos))
		assert.Contains(t, lines[i+1], "dirty")
		assert.Contains(t, lines[i+1], "needs air")
	}
	assert.Contains(t, logs, "car delivered")
}

func TestCarSameSeedSameTires(t *testing.T) {
	t.Parallel()

	a, _, err := run(t, "--seed", "12", "car", "Ford", "F-150")
	require.NoError(t, err)
	b, _, err := run(t, "--seed", "12", "car", "Ford", "F-150")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCarNeedsMakeAndModel(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "car", "Toyota")
	assert.Error(t, err)
}

func TestMotorcycleMud(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "motorcycle", "Honda", "CB500F")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "clean=true"))

	out, logs, err := run(t, "moto", "Honda", "CB500F", "--mud")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "clean=false"))
	assert.Contains(t, logs, "rode through mud")
}

func TestGarage(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--seed", "1", "garage")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Garage: 7 vehicles, Active: Toyota Camry\n"))
	assert.Contains(t, out, "7. make='Triumph', model='Bonneville'")
}

func TestBadLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--log-level", "loud", "garage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestGarageFind(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "--seed", "2", "garage", "--find", "Ducati Monster")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "5. make='Ducati', model='Monster'"))
	assert.True(t, strings.HasPrefix(lines[1], "front"))
	assert.True(t, strings.HasPrefix(lines[2], "rear"))
	assert.Contains(t, lines[2], "clean")
}

func TestGarageFindMissing(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "garage", "--find", "Honda Civic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no vehicle "Honda Civic"`)
}

func TestGarageCapacity(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "garage", "--capacity", "10")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Garage: 7/10 vehicles, Active: Toyota Camry\nFree slots: 3\n"))

	_, _, err = run(t, "garage", "--capacity", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "park Ford F-150")

	_, _, err = run(t, "garage", "--capacity", "-1")
	assert.Error(t, err)
}

func TestSameSeedAcrossParallelRoots(t *testing.T) {
	t.Parallel()

	outs := make(chan string, 8)
	for i := 0; i < cap(outs); i++ {
		go func() {
			var out bytes.Buffer
			root := NewRootCmd()
			root.SetArgs([]string{"--seed", "21", "--log-level", "error", "garage"})
			root.SetOut(&out)
			root.SetErr(&bytes.Buffer{})
			if err := root.Execute(); err != nil {
				outs <- err.Error()
				return
			}
			outs <- out.String()
		}()
	}

	first := <-outs
	assert.True(t, strings.HasPrefix(first, "Garage: 7 vehicles"))
	for i := 1; i < cap(outs); i++ {
		assert.Equal(t, first, <-outs)
	}
}
