package main

import (
	"fmt"
	"os"

	"github.com/Egor213/NodeLogs/internal/app"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "nodelogs-tui",
		Usage: "follow the logs of a managed node in the terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "node",
				Aliases: []string{"n"},
				Usage:   "node id to open on start, 0 opens nothing",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
				EnvVars: []string{"APP_CONFIG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			return app.RunTUI(app.TUIOptions{
				ConfigPath: c.String("config"),
				NodeID:     c.Int("node"),
			})
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
