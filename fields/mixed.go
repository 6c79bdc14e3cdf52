package fields

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/freesurface/wavebc/mesh"
	"github.com/freesurface/wavebc/utils"
)

/*
Mixed is the generic blended boundary condition: per face a value fraction f,
a reference value and a reference gradient. f = 1 imposes the reference value
(Dirichlet), f = 0 imposes the reference gradient (Neumann), intermediate f
blends the two. Conditions embed it and set the three arrays in their
UpdateCoeffs; the linear system assembly consumes the four coefficient
accessors below.
*/
type Mixed struct {
	Patch         *mesh.Patch
	ValueFraction *mat.VecDense
	RefValue      *mat.VecDense
	RefGrad       *mat.VecDense
}

func NewMixed(p *mesh.Patch) (m *Mixed) {
	m = &Mixed{
		Patch:         p,
		ValueFraction: utils.NewVecConst(p.NumFaces, 0),
		RefValue:      utils.NewVecConst(p.NumFaces, 0),
		RefGrad:       utils.NewVecConst(p.NumFaces, 0),
	}
	return
}

// Evaluate returns the face values given the owner-cell values:
//
//	value_i = f_i*refValue_i + (1-f_i)*(internal_i + refGrad_i/deltaCoeffs_i)
func (m *Mixed) Evaluate(internal *mat.VecDense) (value *mat.VecDense) {
	var (
		nf = m.Patch.NumFaces
		d  = make([]float64, nf)
	)
	if internal.Len() != nf {
		panicFaceCount("Evaluate", m.Patch, internal.Len())
	}
	for i := 0; i < nf; i++ {
		var (
			f = m.ValueFraction.AtVec(i)
		)
		d[i] = f*m.RefValue.AtVec(i) +
			(1.-f)*(internal.AtVec(i)+m.RefGrad.AtVec(i)/m.Patch.DeltaCoeffs[i])
	}
	value = mat.NewVecDense(nf, d)
	return
}

// The value coefficients split each face value into a part multiplying the
// owner-cell unknown and a constant part, value_i = vic_i*internal_i + vbc_i.
func (m *Mixed) ValueInternalCoeffs() (vic *mat.VecDense) {
	var (
		nf = m.Patch.NumFaces
		d  = make([]float64, nf)
	)
	for i := 0; i < nf; i++ {
		d[i] = 1. - m.ValueFraction.AtVec(i)
	}
	vic = mat.NewVecDense(nf, d)
	return
}

func (m *Mixed) ValueBoundaryCoeffs() (vbc *mat.VecDense) {
	var (
		nf = m.Patch.NumFaces
		d  = make([]float64, nf)
	)
	for i := 0; i < nf; i++ {
		var (
			f = m.ValueFraction.AtVec(i)
		)
		d[i] = f*m.RefValue.AtVec(i) + (1.-f)*m.RefGrad.AtVec(i)/m.Patch.DeltaCoeffs[i]
	}
	vbc = mat.NewVecDense(nf, d)
	return
}

// The gradient coefficients do the same for the face-normal gradient,
// snGrad_i = gic_i*internal_i + gbc_i.
func (m *Mixed) GradientInternalCoeffs() (gic *mat.VecDense) {
	var (
		nf = m.Patch.NumFaces
		d  = make([]float64, nf)
	)
	for i := 0; i < nf; i++ {
		d[i] = -m.ValueFraction.AtVec(i) * m.Patch.DeltaCoeffs[i]
	}
	gic = mat.NewVecDense(nf, d)
	return
}

func (m *Mixed) GradientBoundaryCoeffs() (gbc *mat.VecDense) {
	var (
		nf = m.Patch.NumFaces
		d  = make([]float64, nf)
	)
	for i := 0; i < nf; i++ {
		var (
			f = m.ValueFraction.AtVec(i)
		)
		d[i] = f*m.Patch.DeltaCoeffs[i]*m.RefValue.AtVec(i) + (1.-f)*m.RefGrad.AtVec(i)
	}
	gbc = mat.NewVecDense(nf, d)
	return
}

// AssembleBoundary adds the patch's diffusive boundary contribution, with
// diffusivity gamma, into the owner-cell rows of the system matrix A and the
// source vector b. Each face contributes gamma*area*snGrad with the gradient
// split by the coefficient accessors, so the unknown-dependent part lands on
// the diagonal and the known part in the source.
func (m *Mixed) AssembleBoundary(A utils.DOK, b *mat.VecDense, gamma float64) {
	var (
		nr, _ = A.Dims()
		gic   = m.GradientInternalCoeffs()
		gbc   = m.GradientBoundaryCoeffs()
	)
	if b.Len() != nr {
		panic(fmt.Errorf("patch [%s] AssembleBoundary: source length %d does not match matrix rows %d",
			m.Patch.Name, b.Len(), nr))
	}
	for i := 0; i < m.Patch.NumFaces; i++ {
		var (
			c    = m.Patch.FaceCells[i]
			magS = gamma * m.Patch.Areas[i]
		)
		A.AddAt(c, c, -magS*gic.AtVec(i))
		b.SetVec(c, b.AtVec(c)+magS*gbc.AtVec(i))
	}
}

func panicFaceCount(op string, p *mesh.Patch, got int) {
	panic(fmt.Errorf("patch [%s] %s: length %d does not match face count %d",
		p.Name, op, got, p.NumFaces))
}
