package fields

import (
	"io"

	"github.com/ghodss/yaml"

	"github.com/freesurface/wavebc/mesh"
	"github.com/freesurface/wavebc/utils"
)

// FixedValue imposes a uniform constant value, dictionary option "value"
// (default 0).
type FixedValue struct {
	*Mixed
	value float64
}

// ZeroGradient extrapolates the owner-cell value to every face.
type ZeroGradient struct {
	*Mixed
}

func init() {
	Register("fixedValue", NewFixedValue)
	Register("zeroGradient", NewZeroGradient)
}

func NewFixedValue(p *mesh.Patch, d Dict, model WaveModel, fs Set) (PatchField, error) {
	fv := &FixedValue{
		Mixed: NewMixed(p),
		value: d.Float("value", 0),
	}
	fv.ValueFraction = utils.NewVecConst(p.NumFaces, 1)
	fv.RefValue = utils.NewVecConst(p.NumFaces, fv.value)
	return fv, nil
}

func (fv *FixedValue) Type() string { return "fixedValue" }

func (fv *FixedValue) UpdateCoeffs(t float64) {}

func (fv *FixedValue) Write(w io.Writer) (err error) {
	var (
		out []byte
	)
	out, err = yaml.Marshal(struct {
		Type  string  `yaml:"Type"`
		Value float64 `yaml:"Value"`
	}{fv.Type(), fv.value})
	if err != nil {
		return
	}
	_, err = w.Write(out)
	return
}

func NewZeroGradient(p *mesh.Patch, d Dict, model WaveModel, fs Set) (PatchField, error) {
	return &ZeroGradient{Mixed: NewMixed(p)}, nil
}

func (zg *ZeroGradient) Type() string { return "zeroGradient" }

func (zg *ZeroGradient) UpdateCoeffs(t float64) {}

func (zg *ZeroGradient) Write(w io.Writer) (err error) {
	var (
		out []byte
	)
	out, err = yaml.Marshal(struct {
		Type string `yaml:"Type"`
	}{zg.Type()})
	if err != nil {
		return
	}
	_, err = w.Write(out)
	return
}
