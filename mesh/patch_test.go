package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPatch(t *testing.T) {
	var (
		centers = [][3]float64{{0, 0, 0}, {0, 0, 1}}
		normals = [][3]float64{{-1, 0, 0}, {-1, 0, 0}}
	)
	p, err := NewPatch("inlet", centers, normals,
		[]float64{1, 1}, []float64{1, 1}, []int{0, 1}, []float64{4, 4})
	assert.NoError(t, err)
	assert.Equal(t, 2, p.NumFaces)

	// Disagreeing array lengths are a construction error
	_, err = NewPatch("inlet", centers, normals,
		[]float64{1}, []float64{1, 1}, []int{0, 1}, []float64{4, 4})
	assert.Error(t, err)

	// Empty patch
	_, err = NewPatch("inlet", nil, nil, nil, nil, nil, nil)
	assert.Error(t, err)

	// Non-positive delta coefficients
	_, err = NewPatch("inlet", centers, normals,
		[]float64{1, 1}, []float64{1, 1}, []int{0, 1}, []float64{4, 0})
	assert.Error(t, err)
}

func TestNewVerticalPatch(t *testing.T) {
	var (
		nf = 8
		p  = NewVerticalPatch("inlet", -2, 2, nf, 0.25)
		dz = 0.5
	)
	assert.Equal(t, nf, p.NumFaces)
	for i := 0; i < nf; i++ {
		assert.InDelta(t, -2+(float64(i)+0.5)*dz, p.Centers[i][2], 1.e-12)
		assert.Equal(t, [3]float64{-1, 0, 0}, p.Normals[i])
		assert.InDelta(t, dz*dz, p.Areas[i], 1.e-12)
		assert.InDelta(t, dz, p.Heights[i], 1.e-12)
		assert.Equal(t, i, p.FaceCells[i])
		assert.InDelta(t, 8., p.DeltaCoeffs[i], 1.e-12)
	}
}
