package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestVectorHelpers(t *testing.T) {
	v := NewVecConst(4, 2.5)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 2.5, v.AtVec(3))

	w := VecScalarMult(v, 2)
	assert.Equal(t, 5.0, w.AtVec(0))
	// Input untouched
	assert.Equal(t, 2.5, v.AtVec(0))

	u := mat.NewVecDense(4, []float64{1, -3, 2, 4})
	assert.Equal(t, 1.0, VecMean(u))
	min, max := VecMinMax(u)
	assert.Equal(t, -3.0, min)
	assert.Equal(t, 4.0, max)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
