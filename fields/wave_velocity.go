package fields

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/mat"

	"github.com/freesurface/wavebc/mesh"
)

/*
WaveVelocity imposes the wave superposition model's velocity on the patch and
exposes the resulting signed outward flux through each face. It is the
companion condition waveAlpha classifies against.

Dictionary options: none.
*/
type WaveVelocity struct {
	patch *mesh.Patch
	model WaveModel

	value [][3]float64 // Imposed face velocities
	flux  *mat.VecDense
}

func init() {
	Register("waveVelocity", NewWaveVelocity)
}

func NewWaveVelocity(p *mesh.Patch, d Dict, model WaveModel, fs Set) (PatchField, error) {
	if model == nil {
		return nil, fmt.Errorf("waveVelocity on patch [%s]: no wave model supplied", p.Name)
	}
	wv := &WaveVelocity{
		patch: p,
		model: model,
		value: make([][3]float64, p.NumFaces),
		flux:  mat.NewVecDense(p.NumFaces, nil),
	}
	wv.UpdateCoeffs(0)
	return wv, nil
}

func (wv *WaveVelocity) Type() string { return "waveVelocity" }

// UpdateCoeffs evaluates the model velocity at each face centroid for time t
// and projects it onto the outward normal to form the face flux U·n*A.
func (wv *WaveVelocity) UpdateCoeffs(t float64) {
	for i := 0; i < wv.patch.NumFaces; i++ {
		var (
			c = wv.patch.Centers[i]
			n = wv.patch.Normals[i]
			U = wv.model.Velocity(c[0], c[1], c[2], t)
		)
		wv.value[i] = U
		wv.flux.SetVec(i, (U[0]*n[0]+U[1]*n[1]+U[2]*n[2])*wv.patch.Areas[i])
	}
}

// Value returns the imposed face velocities from the last UpdateCoeffs.
func (wv *WaveVelocity) Value() [][3]float64 { return wv.value }

// OutwardFlux returns the signed face fluxes from the last UpdateCoeffs,
// outward positive.
func (wv *WaveVelocity) OutwardFlux() *mat.VecDense { return wv.flux }

type waveVelocityState struct {
	Type  string       `yaml:"Type"`
	Value [][3]float64 `yaml:"Value"`
}

func (wv *WaveVelocity) Write(w io.Writer) (err error) {
	var (
		out []byte
	)
	out, err = yaml.Marshal(waveVelocityState{
		Type:  wv.Type(),
		Value: wv.value,
	})
	if err != nil {
		return
	}
	_, err = w.Write(out)
	return
}
