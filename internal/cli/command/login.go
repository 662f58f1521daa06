// Package command provides CLI command definitions for sfsession-cli.
package command

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/telemetry/logger"
)

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate and print the session credential",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the credential as JSON",
			},
			&cli.BoolFlag{
				Name:  "show-token",
				Usage: "Print the full access token instead of a masked one",
			},
		},
		Action: runLogin,
	}
}

func runLogin(c *cli.Context) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}
	log, err := InitLogger(cfg)
	if err != nil {
		return err
	}

	coord, err := BuildCoordinator(cfg, log, nil)
	if err != nil {
		return err
	}

	cred, err := coord.Login(c.Context, domain.Credential{})
	if err != nil {
		return err
	}

	token := cred.AccessToken
	if !c.Bool("show-token") {
		token = logger.RedactString(token)
	}

	if c.Bool("json") {
		out := cred
		out.AccessToken = token
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(c.App.Writer, "instance url: %s\n", cred.InstanceURL)
	fmt.Fprintf(c.App.Writer, "access token: %s\n", token)
	if cred.ID != "" {
		fmt.Fprintf(c.App.Writer, "identity:     %s\n", cred.ID)
	}
	return nil
}
