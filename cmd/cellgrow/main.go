// Command cellgrow runs the cellular-forms growth engine from the
// command line: seed an icosphere, iterate the force step and mitotic
// division, and optionally export the resulting mesh as a binary STL.
package main

import "github.com/arkveil/cellgrow/cmd/cellgrow/cmd"

func main() {
	cmd.Execute()
}
