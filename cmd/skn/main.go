// Command skn runs the Knowledge Network's Integration Loop against an
// embryo and curriculum directory, driving it with the Synthesis
// Mechanism and optionally dumping the resulting graph to Graphviz.
package main

import "github.com/lorepozo/skn/cmd/skn/cmd"

func main() {
	cmd.Execute()
}
