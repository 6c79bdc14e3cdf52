/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/freesurface/wavebc/InputParameters"
	"github.com/freesurface/wavebc/fields"
	"github.com/freesurface/wavebc/mesh"
	"github.com/freesurface/wavebc/types"
	"github.com/freesurface/wavebc/utils"
	"github.com/freesurface/wavebc/waves"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wave boundary conditions over the input deck's time range",
	Long: `
Builds the open boundary patch, the wave superposition and the boundary
conditions from a YAML input deck, then steps through time updating the
velocity condition followed by the phase fraction condition and reporting
the per-face inflow/outflow split and the imposed alpha field.

wavebc run -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		ifile, err := cmd.Flags().GetString("inputConditionsFile")
		if err != nil {
			panic(err)
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		wp := processInput(ifile)
		RunWave(wp)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input deck with waves, patch and BCs")
	runCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the working directory")
}

func processInput(fileName string) (wp *InputParameters.WaveParameters) {
	var (
		err error
	)
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input deck (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Wave Flume Inlet"
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
########################################
`
		fmt.Printf("Example file contents:%s", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(fileName); err != nil {
		fmt.Printf("unable to read file: %s\n", fileName)
		panic(err)
	}
	wp = &InputParameters.WaveParameters{}
	if err = wp.Parse(data); err != nil {
		panic(err)
	}
	wp.Print()
	return
}

func RunWave(wp *InputParameters.WaveParameters) {
	var (
		p     = buildPatch(wp)
		model = buildModel(wp)
		fs    = buildFields(wp, p, model)
	)
	alphaName, alpha := findWaveAlpha(fs)
	if alpha == nil {
		fmt.Printf("error: input deck configures no waveAlpha condition\n")
		os.Exit(1)
	}
	if wp.Dt <= 0 {
		fmt.Printf("error: Dt = %g, must be positive\n", wp.Dt)
		os.Exit(1)
	}
	for t := 0.; t <= wp.FinalTime; t += wp.Dt {
		// The alpha condition classifies against the velocity condition's
		// flux, so the companion updates first
		for name, pf := range fs {
			if name != alphaName {
				pf.UpdateCoeffs(t)
			}
		}
		alpha.UpdateCoeffs(t)
		reportStep(t, alpha)
	}
	// Patch contribution to a diffusion system over the owner cells
	var (
		A = utils.NewDOK(p.NumFaces, p.NumFaces)
		b = utils.NewVecConst(p.NumFaces, 0)
	)
	A.SetName("alpha boundary matrix")
	alpha.AssembleBoundary(A, b, 1)
	fmt.Printf("Assembled boundary contribution for %d cells, diag[0] = %8.5f\n",
		p.NumFaces, A.At(0, 0))
	fmt.Printf("Final boundary condition state:\n")
	for name, pf := range fs {
		fmt.Printf("--- field [%s]\n", name)
		if err := pf.Write(os.Stdout); err != nil {
			panic(err)
		}
	}
}

func buildPatch(wp *InputParameters.WaveParameters) *mesh.Patch {
	var (
		ps = wp.Patch
	)
	if ps.NFaces <= 0 || ps.ZMax <= ps.ZMin || ps.CellDepth <= 0 {
		fmt.Printf("error: malformed patch spec %+v\n", ps)
		os.Exit(1)
	}
	return mesh.NewVerticalPatch(ps.Name, ps.ZMin, ps.ZMax, ps.NFaces, ps.CellDepth)
}

func buildModel(wp *InputParameters.WaveParameters) *waves.Superposition {
	var (
		comps = make([]waves.Component, len(wp.Components))
	)
	for i, cs := range wp.Components {
		comps[i] = waves.Component{
			Amplitude: cs.Amplitude,
			Length:    cs.Length,
			Phase:     cs.Phase,
			Direction: cs.Direction,
		}
	}
	model, err := waves.NewSuperposition(wp.MeanLevel, wp.MeanCurrent, comps)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return model
}

// buildFields constructs the deck's boundary conditions. waveAlpha resolves
// its companion at construction, so all other conditions build first.
func buildFields(wp *InputParameters.WaveParameters, p *mesh.Patch,
	model fields.WaveModel) (fs fields.Set) {
	fs = fields.Set{}
	construct := func(deferAlpha bool) {
		for name, rawDict := range wp.BCs {
			if _, done := fs[name]; done {
				continue
			}
			d := fields.Dict(rawDict)
			typeName := canonicalType(d.String("type", ""))
			if (typeName == "waveAlpha") == deferAlpha {
				continue
			}
			pf, err := fields.New(typeName, p, d, model, fs)
			if err != nil {
				fmt.Printf("error constructing BC for field [%s]: %s\n", name, err.Error())
				os.Exit(1)
			}
			fs[name] = pf
		}
	}
	construct(true)
	construct(false)
	return
}

func canonicalType(typeName string) string {
	if canonical, ok := types.BCNameMap[strings.ToLower(strings.TrimSpace(typeName))]; ok {
		return canonical
	}
	return typeName
}

func findWaveAlpha(fs fields.Set) (string, *fields.WaveAlpha) {
	for name, pf := range fs {
		if wa, ok := pf.(*fields.WaveAlpha); ok {
			return name, wa
		}
	}
	return "", nil
}

func reportStep(t float64, alpha *fields.WaveAlpha) {
	var (
		inflow   int
		regimes  = alpha.Regimes()
		min, max = utils.VecMinMax(alpha.RefValue)
	)
	for _, r := range regimes {
		if r == types.RegimeInflow {
			inflow++
		}
	}
	fmt.Printf("t = %8.4f  inflow faces: %3d/%3d  alpha mean/min/max: %8.5f %8.5f %8.5f\n",
		t, inflow, len(regimes), utils.VecMean(alpha.RefValue), min, max)
}
