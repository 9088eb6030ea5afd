// main is the entry point for the seolens CLI.
package main

import (
	"github.com/seolens/seolens/cmd"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/runstore"
)

func main() {
	err := cmd.Execute()

	// Flush the run store before reporting any command failure, since
	// LogFatal exits without running deferred calls.
	runstore.CloseHistory()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
