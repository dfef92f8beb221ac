package commands

import "fmt"

// Overridden at build time via -ldflags.
var version = "dev (unknown)"

type VersionCommand struct{}

func (command *VersionCommand) Execute(args []string) error {
	fmt.Println("passcheck", version)
	return nil
}
