package main

import "github.com/freesurface/wavebc/cmd"

func main() {
	cmd.Execute()
}
