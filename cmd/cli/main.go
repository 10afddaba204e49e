// cubecheck - Cube Game Limit Checker
//
// cubecheck reads a file of cube games and sums the IDs of the games that stay
// within the fixed per-color cube limits.
package main

import (
	"os"

	"github.com/ccollicutt/cubecheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
