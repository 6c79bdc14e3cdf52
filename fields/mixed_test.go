package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/freesurface/wavebc/utils"
)

func TestMixedCoeffs(t *testing.T) {
	var (
		p = testPatch(2) // deltaCoeffs = 4 for cellDepth 0.5
		m = NewMixed(p)
	)
	// Face 0 Dirichlet, face 1 Neumann
	m.ValueFraction.SetVec(0, 1)
	m.RefValue.SetVec(0, 0.8)
	m.ValueFraction.SetVec(1, 0)
	m.RefGrad.SetVec(1, 2)

	delta := p.DeltaCoeffs[0]
	assert.Equal(t, 0.0, m.ValueInternalCoeffs().AtVec(0))
	assert.Equal(t, 0.8, m.ValueBoundaryCoeffs().AtVec(0))
	assert.Equal(t, -delta, m.GradientInternalCoeffs().AtVec(0))
	assert.Equal(t, delta*0.8, m.GradientBoundaryCoeffs().AtVec(0))

	assert.Equal(t, 1.0, m.ValueInternalCoeffs().AtVec(1))
	assert.Equal(t, 2/delta, m.ValueBoundaryCoeffs().AtVec(1))
	assert.Equal(t, 0.0, m.GradientInternalCoeffs().AtVec(1))
	assert.Equal(t, 2.0, m.GradientBoundaryCoeffs().AtVec(1))

	// Face value from owner cells: Dirichlet ignores the interior, Neumann
	// extrapolates it plus the gradient contribution
	internal := mat.NewVecDense(2, []float64{0.3, 0.5})
	value := m.Evaluate(internal)
	assert.Equal(t, 0.8, value.AtVec(0))
	assert.InDelta(t, 0.5+2/delta, value.AtVec(1), 1.e-12)

	// The split must reconstruct the same face values
	vic, vbc := m.ValueInternalCoeffs(), m.ValueBoundaryCoeffs()
	for i := 0; i < p.NumFaces; i++ {
		assert.InDelta(t, value.AtVec(i),
			vic.AtVec(i)*internal.AtVec(i)+vbc.AtVec(i), 1.e-12)
	}

	assert.Panics(t, func() { m.Evaluate(mat.NewVecDense(3, nil)) })
}

func TestMixedAssembly(t *testing.T) {
	var (
		p     = testPatch(2)
		m     = NewMixed(p)
		gamma = 0.5
		A     = utils.NewDOK(2, 2)
		b     = utils.NewVecConst(2, 0)
	)
	m.ValueFraction.SetVec(0, 1)
	m.RefValue.SetVec(0, 0.8)
	m.ValueFraction.SetVec(1, 0)

	m.AssembleBoundary(A, b, gamma)

	var (
		delta = p.DeltaCoeffs[0]
		area  = p.Areas[0]
	)
	// Dirichlet face: diagonal picks up gamma*area*delta, source the matching
	// reference value part
	assert.InDelta(t, gamma*area*delta, A.At(0, 0), 1.e-12)
	assert.InDelta(t, gamma*area*delta*0.8, b.AtVec(0), 1.e-12)
	// Zero gradient face contributes nothing
	assert.Equal(t, 0.0, A.At(1, 1))
	assert.Equal(t, 0.0, b.AtVec(1))
	// Off diagonal untouched
	assert.Equal(t, 0.0, A.At(0, 1))

	// Assembly accumulates
	m.AssembleBoundary(A, b, gamma)
	assert.InDelta(t, 2*gamma*area*delta, A.At(0, 0), 1.e-12)

	assert.Panics(t, func() { m.AssembleBoundary(A, utils.NewVecConst(3, 0), gamma) })
}
