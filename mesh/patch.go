/*
Package mesh holds the minimal patch geometry boundary conditions operate on:
an ordered set of boundary faces with centroids, outward unit normals, areas
and owner-cell addressing. The face ordering is fixed at construction and is
the ordering every per-face field on the patch follows.
*/
package mesh

import "fmt"

type Patch struct {
	Name     string
	NumFaces int
	Centers  [][3]float64 // Face centroids
	Normals  [][3]float64 // Unit normals, outward positive
	Areas    []float64
	Heights  []float64 // Vertical extent of each face
	// Owner cell index per face, into the adjacent internal field
	FaceCells []int
	// Reciprocal of the face-centroid to owner-cell-centroid distance,
	// used by gradient-type boundary coefficients
	DeltaCoeffs []float64
}

func NewPatch(name string, centers, normals [][3]float64, areas, heights []float64,
	faceCells []int, deltaCoeffs []float64) (p *Patch, err error) {
	var (
		nf = len(centers)
	)
	if nf == 0 {
		err = fmt.Errorf("patch [%s] has no faces", name)
		return
	}
	if len(normals) != nf || len(areas) != nf || len(heights) != nf ||
		len(faceCells) != nf || len(deltaCoeffs) != nf {
		err = fmt.Errorf("patch [%s]: face array lengths disagree: "+
			"centers %d, normals %d, areas %d, heights %d, faceCells %d, deltaCoeffs %d",
			name, nf, len(normals), len(areas), len(heights), len(faceCells), len(deltaCoeffs))
		return
	}
	for i, dc := range deltaCoeffs {
		if dc <= 0 {
			err = fmt.Errorf("patch [%s]: deltaCoeffs[%d] = %g, must be positive", name, i, dc)
			return
		}
	}
	p = &Patch{
		Name:        name,
		NumFaces:    nf,
		Centers:     centers,
		Normals:     normals,
		Areas:       areas,
		Heights:     heights,
		FaceCells:   faceCells,
		DeltaCoeffs: deltaCoeffs,
	}
	return
}

// NewVerticalPatch builds a column of nFaces square faces on the x = 0 plane
// spanning [zMin, zMax], with outward normals pointing in -X and each face
// owned by the cell of the same index at distance cellDepth/2 inside the
// domain. It is the standard open-boundary patch for the wave test cases.
func NewVerticalPatch(name string, zMin, zMax float64, nFaces int, cellDepth float64) (p *Patch) {
	var (
		dz          = (zMax - zMin) / float64(nFaces)
		centers     = make([][3]float64, nFaces)
		normals     = make([][3]float64, nFaces)
		areas       = make([]float64, nFaces)
		heights     = make([]float64, nFaces)
		faceCells   = make([]int, nFaces)
		deltaCoeffs = make([]float64, nFaces)
	)
	for i := 0; i < nFaces; i++ {
		centers[i] = [3]float64{0, 0, zMin + (float64(i)+0.5)*dz}
		normals[i] = [3]float64{-1, 0, 0}
		areas[i] = dz * dz
		heights[i] = dz
		faceCells[i] = i
		deltaCoeffs[i] = 2. / cellDepth
	}
	p, err := NewPatch(name, centers, normals, areas, heights, faceCells, deltaCoeffs)
	if err != nil {
		panic(err)
	}
	return
}
