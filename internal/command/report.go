// Copyright (c) 2026 The sessionctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/designsource/sessionctl/internal/cache"
	"github.com/designsource/sessionctl/internal/report"
	"github.com/designsource/sessionctl/internal/session"
)

// ReportCommandAction is the action handler for the root command. It
// locates the cache artifact, parses it, and prints the session report.
// Every outcome is reported on stdout and none of them is an error: a
// missing, unreadable, or malformed artifact degrades to a notice so
// the command always exits cleanly.
func ReportCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	path, ok := cache.Locate()
	if !ok {
		report.NotFound(w)
		return nil
	}

	data, err := cache.Read(path)
	if err != nil {
		report.ReadFailure(w, err)
		return nil
	}

	doc, err := session.Parse(data)
	if err != nil {
		report.ParseFailure(w)
		return nil
	}

	report.Render(doc, w)
	return nil
}
