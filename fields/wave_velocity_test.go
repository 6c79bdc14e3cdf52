package fields

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freesurface/wavebc/types"
	"github.com/freesurface/wavebc/waves"
)

func waveModel(t *testing.T, current [3]float64, comps []waves.Component) *waves.Superposition {
	model, err := waves.NewSuperposition(0, current, comps)
	assert.NoError(t, err)
	return model
}

func TestWaveVelocityFlux(t *testing.T) {
	var (
		p = testPatch(4) // outward normal is -X
	)
	// Uniform current into the domain: outward flux negative on every face
	model := waveModel(t, [3]float64{0.5, 0, 0}, nil)
	pf, err := NewWaveVelocity(p, Dict{}, model, Set{})
	assert.NoError(t, err)
	wv := pf.(*WaveVelocity)
	wv.UpdateCoeffs(0)
	for i := 0; i < p.NumFaces; i++ {
		assert.InDelta(t, -0.5*p.Areas[i], wv.OutwardFlux().AtVec(i), 1.e-12)
		assert.Equal(t, [3]float64{0.5, 0, 0}, wv.Value()[i])
	}

	// Reversed current: outward flux positive
	model = waveModel(t, [3]float64{-0.5, 0, 0}, nil)
	pf, _ = NewWaveVelocity(p, Dict{}, model, Set{})
	wv = pf.(*WaveVelocity)
	wv.UpdateCoeffs(0)
	for i := 0; i < p.NumFaces; i++ {
		assert.True(t, wv.OutwardFlux().AtVec(i) > 0)
	}

	_, err = NewWaveVelocity(p, Dict{}, nil, Set{})
	assert.Error(t, err)

	var buf bytes.Buffer
	assert.NoError(t, wv.Write(&buf))
	assert.Contains(t, buf.String(), "waveVelocity")
}

func TestWaveConditionsTogether(t *testing.T) {
	// Full pairing of waveVelocity and waveAlpha on one patch, driven by a
	// real superposition: an orbital velocity strong enough to reverse the
	// mean inflow near the surface produces a mixed inflow/outflow split
	var (
		p     = testPatch(8)
		model = waveModel(t, [3]float64{0.05, 0, 0}, []waves.Component{
			{Amplitude: 0.3, Length: 5, Direction: [2]float64{-1, 0}},
		})
		fs = Set{}
	)
	pfU, err := NewWaveVelocity(p, Dict{}, model, fs)
	assert.NoError(t, err)
	fs["U"] = pfU
	pfA, err := NewWaveAlpha(p, Dict{}, model, fs)
	assert.NoError(t, err)
	wa := pfA.(*WaveAlpha)

	for _, time := range []float64{0, 0.5, 1, 1.5} {
		pfU.UpdateCoeffs(time)
		wa.UpdateCoeffs(time)
		flux := pfU.(*WaveVelocity).OutwardFlux()
		for i := 0; i < p.NumFaces; i++ {
			if flux.AtVec(i) > 0 {
				assert.Equal(t, types.RegimeOutflow, wa.Regimes()[i])
				assert.Equal(t, 0.0, wa.ValueFraction.AtVec(i))
			} else {
				assert.Equal(t, types.RegimeInflow, wa.Regimes()[i])
				assert.Equal(t, 1.0, wa.ValueFraction.AtVec(i))
			}
			// The cached value always tracks the model prediction
			assert.Equal(t, wa.Alpha(time).AtVec(i), wa.RefValue.AtVec(i))
		}
	}
}
