// rcube - CLI for applying and tracking Rubik's cube moves.
package main

import (
	"github.com/SeamusWaldron/rcube/internal/cli"
)

func main() {
	cli.Execute()
}
