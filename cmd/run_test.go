package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/freesurface/wavebc/InputParameters"
)

func TestRunWaveInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Wave Flume Inlet
FinalTime: 10.
Dt: 0.25
MeanLevel: 0.
MeanCurrent: [0.5, 0., 0.]
Components:
  - Amplitude: 0.25
    Length: 10.
    Phase: 0.
    Direction: [1., 0.]
Patch:
  Name: inlet
  ZMin: -2.
  ZMax: 2.
  NFaces: 16
  CellDepth: 0.25
BCs:
  U:
    type: waveVelocity
  alpha:
    type: waveAlpha
    U: U
    liquid: true
    inletOutlet: true
`)
	var input InputParameters.WaveParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Title, "Wave Flume Inlet")
	assert.Equal(t, input.FinalTime, 10.)
	assert.Equal(t, input.Patch.NFaces, 16)
	assert.Equal(t, len(input.Components), 1)
	assert.Equal(t, input.Components[0].Amplitude, 0.25)
	// Check the alpha BC dictionary
	assert.Equal(t, input.BCs["alpha"]["type"], "waveAlpha")
	assert.Equal(t, input.BCs["alpha"]["inletOutlet"], true)
	assert.Equal(t, input.BCs["U"]["type"], "waveVelocity")
	input.Print()
	assert.Equal(t, input.Dt, 0.25)
}

func TestRunWave(t *testing.T) {
	// End to end over a short deck: builds patch, model and BCs and steps
	var input InputParameters.WaveParameters
	if err := input.Parse([]byte(`
Title: Short Run
FinalTime: 0.5
Dt: 0.25
MeanLevel: 0.
MeanCurrent: [0.25, 0., 0.]
Components:
  - Amplitude: 0.1
    Length: 5.
    Phase: 0.
    Direction: [1., 0.]
Patch:
  Name: inlet
  ZMin: -1.
  ZMax: 1.
  NFaces: 8
  CellDepth: 0.25
BCs:
  U:
    type: waveVelocity
  alpha:
    type: waveAlpha
`)); err != nil {
		panic(err)
	}
	RunWave(&input)
}
