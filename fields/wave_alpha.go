package fields

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/mat"

	"github.com/freesurface/wavebc/mesh"
	"github.com/freesurface/wavebc/types"
	"github.com/freesurface/wavebc/utils"
)

/*
WaveAlpha sets the phase fraction at an open boundary to the value predicted
by the wave superposition model. With inletOutlet enabled (the default) it
adapts per face to the flow direction reported by the companion velocity
condition: faces with outward flux <= 0 are inflow and impose the modelled
value, faces with outward flux > 0 are outflow and revert to zero gradient.
With inletOutlet disabled the modelled value is imposed on every face
regardless of flux, which follows the wave solution more closely but can be
unstable when the actual flow opposes it.

Dictionary options, all optional:

	U           name of the companion velocity field   (default "U")
	liquid      alpha is the liquid fraction           (default true)
	inletOutlet adapt to the local flow direction      (default true)
*/
type WaveAlpha struct {
	*Mixed
	model  WaveModel
	fields Set

	uName       string
	liquid      bool
	inletOutlet bool

	regimes []types.FaceRegime
}

func init() {
	Register("waveAlpha", NewWaveAlpha)
}

func NewWaveAlpha(p *mesh.Patch, d Dict, model WaveModel, fs Set) (PatchField, error) {
	var (
		wa = &WaveAlpha{
			Mixed:       NewMixed(p),
			model:       model,
			fields:      fs,
			uName:       d.String("U", "U"),
			liquid:      d.Bool("liquid", true),
			inletOutlet: d.Bool("inletOutlet", true),
			regimes:     make([]types.FaceRegime, p.NumFaces),
		}
	)
	if model == nil {
		return nil, fmt.Errorf("waveAlpha on patch [%s]: no wave model supplied", p.Name)
	}
	companion, ok := fs[wa.uName]
	if !ok {
		return nil, fmt.Errorf("waveAlpha on patch [%s]: companion velocity field [%s] not found",
			p.Name, wa.uName)
	}
	if _, ok = companion.(FluxProvider); !ok {
		return nil, fmt.Errorf(
			"waveAlpha on patch [%s]: condition [%s] on field [%s] provides no outward flux",
			p.Name, companion.Type(), wa.uName)
	}
	// Start every face as inflow with the initial modelled value
	wa.ValueFraction = utils.NewVecConst(p.NumFaces, 1)
	wa.RefValue = wa.Alpha(0)
	return wa, nil
}

func (wa *WaveAlpha) Type() string { return "waveAlpha" }

func (wa *WaveAlpha) Liquid() bool { return wa.liquid }

// Alpha returns the modelled phase fraction at time t, fresh from the wave
// model and independent of the inflow/outflow classification.
func (wa *WaveAlpha) Alpha(t float64) *mat.VecDense {
	return wa.model.Fraction(wa.Patch, t, wa.liquid)
}

// Regimes reports the per-face classification from the last UpdateCoeffs.
func (wa *WaveAlpha) Regimes() []types.FaceRegime { return wa.regimes }

// UpdateCoeffs classifies every face from the companion condition's outward
// flux and sets the mixed coefficients: inflow faces impose the modelled
// value, outflow faces a zero gradient. The reference value is refreshed on
// outflow faces too, so a face switching back to inflow picks up the current
// modelled value rather than a stale one. The companion velocity condition
// must have been updated for the same time before this is called.
func (wa *WaveAlpha) UpdateCoeffs(t float64) {
	var (
		nf    = wa.Patch.NumFaces
		alpha = wa.Alpha(t)
		flux  = wa.fields[wa.uName].(FluxProvider).OutwardFlux()
	)
	if flux.Len() != nf {
		panicFaceCount("UpdateCoeffs flux", wa.Patch, flux.Len())
	}
	// Per-face work is independent, split the face range across threads
	var (
		pm = utils.NewPartitionMap(runtime.NumCPU(), nf)
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			iMin, iMax := pm.GetBucketRange(np)
			for i := iMin; i < iMax; i++ {
				wa.updateFace(i, alpha.AtVec(i), flux.AtVec(i))
			}
		}(np)
	}
	wg.Wait()
}

// updateFace sets one face's blend. Zero flux counts as inflow.
func (wa *WaveAlpha) updateFace(i int, alpha, flux float64) {
	wa.RefValue.SetVec(i, alpha)
	wa.RefGrad.SetVec(i, 0)
	if wa.inletOutlet && flux > 0 {
		wa.ValueFraction.SetVec(i, 0)
		wa.regimes[i] = types.RegimeOutflow
	} else {
		wa.ValueFraction.SetVec(i, 1)
		wa.regimes[i] = types.RegimeInflow
	}
}

type waveAlphaState struct {
	Type          string    `yaml:"Type"`
	U             string    `yaml:"U"`
	Liquid        bool      `yaml:"Liquid"`
	InletOutlet   bool      `yaml:"InletOutlet"`
	ValueFraction []float64 `yaml:"ValueFraction"`
	RefValue      []float64 `yaml:"RefValue"`
	RefGrad       []float64 `yaml:"RefGrad"`
}

// Write serializes the dictionary options and the mixed base state for
// restart. The per-face classification is recomputed, never persisted.
func (wa *WaveAlpha) Write(w io.Writer) (err error) {
	var (
		out []byte
	)
	out, err = yaml.Marshal(waveAlphaState{
		Type:          wa.Type(),
		U:             wa.uName,
		Liquid:        wa.liquid,
		InletOutlet:   wa.inletOutlet,
		ValueFraction: wa.ValueFraction.RawVector().Data,
		RefValue:      wa.RefValue.RawVector().Data,
		RefGrad:       wa.RefGrad.RawVector().Data,
	})
	if err != nil {
		return
	}
	_, err = w.Write(out)
	return
}

// Rebind produces a fresh WaveAlpha on a new patch, as after mesh refinement
// or field remapping. faceMap gives, for each new face, the old face its
// mixed state is carried from, or -1 for a face with no precursor, which
// starts as inflow with the current modelled value. fs must contain the
// companion velocity condition on the new patch.
func (wa *WaveAlpha) Rebind(p *mesh.Patch, faceMap []int, fs Set) (*WaveAlpha, error) {
	if len(faceMap) != p.NumFaces {
		return nil, fmt.Errorf("waveAlpha rebind to patch [%s]: face map length %d, want %d",
			p.Name, len(faceMap), p.NumFaces)
	}
	pf, err := NewWaveAlpha(p, Dict{
		"U":           wa.uName,
		"liquid":      wa.liquid,
		"inletOutlet": wa.inletOutlet,
	}, wa.model, fs)
	if err != nil {
		return nil, err
	}
	fresh := pf.(*WaveAlpha)
	for i, iOld := range faceMap {
		if iOld < 0 {
			continue
		}
		if iOld >= wa.Patch.NumFaces {
			return nil, fmt.Errorf("waveAlpha rebind to patch [%s]: face map entry %d -> %d out of range",
				p.Name, i, iOld)
		}
		fresh.ValueFraction.SetVec(i, wa.ValueFraction.AtVec(iOld))
		fresh.RefValue.SetVec(i, wa.RefValue.AtVec(iOld))
		fresh.RefGrad.SetVec(i, wa.RefGrad.AtVec(iOld))
		fresh.regimes[i] = wa.regimes[iOld]
	}
	return fresh, nil
}
