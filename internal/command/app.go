// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"
)

// InitApp assembles the sessionctl command tree. The root command itself
// carries the report action, so a bare invocation prints the cached
// session context.
func InitApp() *cli.Command {
	app := &cli.Command{
		Name:   "sessionctl",
		Usage:  "display cached session context",
		Action: ReportCommandAction,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "sessionctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		CompletionCommandBuilder(),
	)

	return app
}
