package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		"unnamed - hint: pass a variable name to SetName()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)              { return m.M.Dims() }
func (m DOK) At(i, j int) float64           { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix                 { return m.M.T() }
func (m DOK) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

func (m *DOK) SetName(name string) {
	m.name = name
}

func (m DOK) Set(i, j int, val float64) {
	m.checkBounds(i, j)
	m.M.Set(i, j, val)
}

// AddAt accumulates val into entry (i,j), the usual assembly operation.
func (m DOK) AddAt(i, j int, val float64) {
	m.checkBounds(i, j)
	m.M.Set(i, j, m.M.At(i, j)+val)
}

// ToCSR converts to compressed sparse row form for efficient products.
func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}

func (m DOK) checkBounds(i, j int) {
	var (
		nr, nc = m.Dims()
	)
	if i < 0 || i >= nr || j < 0 || j >= nc {
		panic(fmt.Errorf("index (%d,%d) out of bounds for matrix [%s], size [%d,%d]",
			i, j, m.name, nr, nc))
	}
}
