package waves

import (
	"gonum.org/v1/gonum/mat"

	"github.com/freesurface/wavebc/mesh"
	"github.com/freesurface/wavebc/utils"
)

// Fraction returns the modelled phase fraction for every face of the patch at
// time t. With liquid true it is the liquid fraction: 1 where the face lies
// fully below the free surface, 0 fully above, and the submerged portion of
// the face's vertical extent in between. With liquid false the complementary
// gas fraction is returned, so that for any face and time the two sum to one
// exactly.
func (s *Superposition) Fraction(p *mesh.Patch, t float64, liquid bool) (alpha *mat.VecDense) {
	var (
		d = make([]float64, p.NumFaces)
	)
	for i := 0; i < p.NumFaces; i++ {
		var (
			c   = p.Centers[i]
			eta = s.Elevation(c[0], c[1], t)
			h   = eta - c[2] // Surface height above the face centroid
		)
		if p.Heights[i] > 0 {
			d[i] = utils.Clamp(0.5+h/p.Heights[i], 0, 1)
		} else if h >= 0 {
			d[i] = 1
		}
		if !liquid {
			d[i] = 1 - d[i]
		}
	}
	alpha = mat.NewVecDense(p.NumFaces, d)
	return
}
