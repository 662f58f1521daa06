// Package command provides CLI command definitions for sfsession-cli.
package command

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/core/session"
)

// LogoutCommand returns the logout command.
//
// Tokens are never persisted between CLI invocations, so the token to
// revoke comes from the caller.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Revoke an access token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Access token to revoke",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "instance-url",
				Usage: "Org instance URL to revoke against (defaults to the login host)",
			},
		},
		Action: runLogout,
	}
}

func runLogout(c *cli.Context) error {
	cfg, err := loadRawConfig(c)
	if err != nil {
		return err
	}
	if _, err := InitLogger(cfg); err != nil {
		return err
	}

	base := c.String("instance-url")
	if base == "" {
		base = cfg.Auth.LoginURL
	}

	req, err := session.BuildRevokeRequest(c.Context, base, c.String("token"))
	if err != nil {
		return err
	}

	client, err := newTransport(cfg)
	if err != nil {
		return err
	}
	resp, err := client.Send(c.Context, req)
	if err != nil {
		return err
	}
	if resp.Status != http.StatusOK {
		return domain.ErrLogoutStatus.
			WithStatus(resp.Status).
			WithDetails(fmt.Sprintf("status:[%d] reason:[%s]", resp.Status, resp.Reason))
	}

	fmt.Fprintln(c.App.Writer, "token revoked")
	return nil
}
