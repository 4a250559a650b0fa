package main

import (
	"fmt"
	"os"

	"github.com/compozy/headerver/cmd"
)

func main() {
	if err := cmd.InitCommands(); err != nil {
		fmt.Fprintf(os.Stderr, "headerver: failed to initialize: %v\n", err)
		os.Exit(cmd.ExitError)
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "headerver: %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
