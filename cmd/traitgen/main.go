// Command traitgen validates trait and specification definitions and
// generates their Go packages.
package main

import "github.com/agentic-research/mediacreation/cmd"

func main() {
	cmd.Execute()
}
