// Package command provides CLI command definitions for sfsession-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/averlon/sfsession-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Action: runVersion,
	}
}

func runVersion(c *cli.Context) error {
	info := buildinfo.Get()
	fmt.Fprintf(c.App.Writer, "sfsession-cli %s\n", info.Version)
	fmt.Fprintf(c.App.Writer, "commit:     %s\n", info.Commit)
	fmt.Fprintf(c.App.Writer, "build time: %s\n", info.BuildTime)
	fmt.Fprintf(c.App.Writer, "go version: %s\n", info.GoVersion)
	return nil
}
