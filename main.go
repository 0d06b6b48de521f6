package main

import (
	"os"

	"github.com/RogersPyke/robocoin-visualizer/cmd"
	"github.com/RogersPyke/robocoin-visualizer/logging"
)

func main() {
	defer logging.Close()

	if err := cmd.Execute(); err != nil {
		logging.Get().Printf("fatal: %v", err)
		os.Stderr.WriteString("robocoin: " + err.Error() + "\n")
		os.Exit(1)
	}
}
