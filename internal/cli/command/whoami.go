// Package command provides CLI command definitions for sfsession-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/telemetry/logger"
)

// WhoAmICommand returns the whoami command. It performs a full
// login/logout cycle and reports the authenticated identity, which
// makes it a handy end-to-end check of a deployment's credentials.
func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Verify credentials and print the authenticated identity",
		Action: runWhoAmI,
	}
}

func runWhoAmI(c *cli.Context) error {
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

	fmt.Fprintf(c.App.Writer, "username:     %s\n", cfg.Auth.Username)
	fmt.Fprintf(c.App.Writer, "instance url: %s\n", cred.InstanceURL)
	if cred.ID != "" {
		fmt.Fprintf(c.App.Writer, "identity:     %s\n", cred.ID)
	}
	fmt.Fprintf(c.App.Writer, "access token: %s\n", logger.RedactString(cred.AccessToken))

	// The token was only borrowed for the check; revoke it on the way out
	if err := coord.Logout(c.Context); err != nil {
		log.Warn("failed to revoke verification token", "error", err)
	}
	return nil
}
