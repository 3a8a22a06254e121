package logsafe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFloorLadder(t *testing.T) {
	const eps = 1e-3

	rng, err := Compute([]float64{-5, 0}, Symmetric([]float64{1, 0}), eps)
	require.NoError(t, err)

	for i := 0; i < rng.Len(); i++ {
		lo, mid, hi := rng.Bounds(i)
		assert.InDelta(t, eps, lo, 1e-15)
		assert.InDelta(t, 2*eps, mid, 1e-15)
		assert.InDelta(t, 3*eps, hi, 1e-15)
	}
}

func TestComputeRegularPoint(t *testing.T) {
	const eps = 1e-6

	rng, err := Compute([]float64{10}, Asymmetric([]float64{2}, []float64{3}), eps)
	require.NoError(t, err)

	lo, mid, hi := rng.Bounds(0)
	assert.InDelta(t, 10, mid, 1e-9)
	// the down error is widened by eps before subtracting
	assert.InDelta(t, 10-2-eps, lo, 1e-9)
	assert.InDelta(t, 10+3+eps, hi, 1e-9)
	assert.InDelta(t, 2+eps, rng.Low[0], 1e-9)
	assert.InDelta(t, 3+eps, rng.High[0], 1e-9)
}

func TestComputeLowerBoundFloors(t *testing.T) {
	const eps = 1e-4

	// error bar crosses zero: lower bound floors, center does not
	rng, err := Compute([]float64{1}, Symmetric([]float64{5}), eps)
	require.NoError(t, err)

	lo, mid, hi := rng.Bounds(0)
	assert.InDelta(t, eps, lo, 1e-15)
	assert.InDelta(t, 1, mid, 1e-12)
	assert.InDelta(t, 6+eps, hi, 1e-12)
}

func TestComputeStrictOrdering(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 1000
	const eps = 1e-3

	data := make([]float64, n)
	errs := make([]float64, n)
	for i := range data {
		data[i] = r.Float64()*10 - 5
		errs[i] = r.Float64() * 3
	}
	errs[0] = 0

	rng, err := Compute(data, Symmetric(errs), eps)
	require.NoError(t, err)
	require.Equal(t, n, rng.Len())

	for i := 0; i < n; i++ {
		lo, mid, hi := rng.Bounds(i)
		assert.Greater(t, lo, 0.0, "index %d", i)
		assert.Less(t, lo, mid, "index %d", i)
		assert.Less(t, mid, hi, "index %d", i)
		assert.GreaterOrEqual(t, rng.Low[i], 0.0)
		assert.GreaterOrEqual(t, rng.High[i], 0.0)
	}
}

func TestComputeSymmetricMatchesAsymmetric(t *testing.T) {
	data := []float64{-2, 0, 1e-9, 0.5, 3, 100}
	errs := []float64{0.1, 1, 0, 0.7, 4, 10}
	const eps = 1e-10

	sym, err := Compute(data, Symmetric(errs), eps)
	require.NoError(t, err)

	rows, err := FromRows([][]float64{errs, errs})
	require.NoError(t, err)
	asym, err := Compute(data, rows, eps)
	require.NoError(t, err)

	assert.Equal(t, sym, asym)
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	data := []float64{1, 2, 3}
	errs := []float64{0.5, 0.5, 0.5}

	first, err := Compute(data, Symmetric(errs), 1e-3)
	require.NoError(t, err)
	second, err := Compute(data, Symmetric(errs), 1e-3)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, data)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, errs)
	assert.Equal(t, first, second, "repeated calls must not accumulate epsilon")
}

func TestComputeEmpty(t *testing.T) {
	rng, err := Compute(nil, Symmetric(nil), 1e-15)
	require.NoError(t, err)
	assert.Equal(t, 0, rng.Len())
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		errs ErrorBars
		eps  float64
		want error
	}{
		{"zero epsilon", []float64{1}, Symmetric([]float64{1}), 0, ErrInvalidEpsilon},
		{"negative epsilon", []float64{1}, Symmetric([]float64{1}), -1, ErrInvalidEpsilon},
		{"short errors", []float64{1, 2}, Symmetric([]float64{1}), 1e-3, ErrShapeMismatch},
		{"short up errors", []float64{1}, Asymmetric([]float64{1}, nil), 1e-3, ErrShapeMismatch},
		{"negative error", []float64{1}, Symmetric([]float64{-1}), 1e-3, ErrNegativeError},
		{"NaN data", []float64{math.NaN()}, Symmetric([]float64{1}), 1e-3, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := Compute(tt.data, tt.errs, tt.eps)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, rng)
		})
	}
}

func TestUnresolved(t *testing.T) {
	data := []float64{0, 1e-3, 1, 1000}

	assert.Empty(t, Unresolved(data, 1e-3))
	assert.Equal(t, []int{2, 3}, Unresolved(data, 1e-15))
	assert.Empty(t, Unresolved(nil, 1e-15))
}

func TestFromRows(t *testing.T) {
	sym, err := FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, sym.Down, sym.Up)
	assert.Equal(t, 2, sym.Len())

	asym, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, asym.Down)
	assert.Equal(t, []float64{3, 4}, asym.Up)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = FromRows([][]float64{{1}, {2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
