// Pigment - a painter's colour naming and palette analysis tool
//
// Pigment names colours using artist vocabularies, extracts palettes
// from artwork images and analyses their composition.
package main

import (
	"github.com/pigmentlab/pigment/internal/cli"
)

func main() {
	cli.Execute()
}
