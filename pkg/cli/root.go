/*
Copyright © 2025 ODC Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/odc-tools/odc/pkg/logging"
)

const name = "odcctl"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "log level (debug, info, warn, error)",
	Sources: cli.EnvVars("ODC_LOG_LEVEL"),
	Value:   "info",
}

var manifestFlag = &cli.StringFlag{
	Name:     "manifest",
	Aliases:  []string{"m"},
	Required: true,
	Usage:    "Path to the collection manifest (XML or YAML)",
	Sources:  cli.EnvVars("ODC_MANIFEST"),
}

// Run builds the root command and executes it with the given arguments.
// It is called by main.main().
func Run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:    name,
		Usage:   "Offline diagnostic collector",
		Version: version,
		Description: fmt.Sprintf(`odcctl - Offline Diagnostic Collector

Version: %s
Commit:  %s
Built:   %s

Collects diagnostic artifacts (files, registry exports, event logs, command
output) as directed by a declarative manifest, organizes them into a
predictable directory tree, and packages the result into a single zip
archive for offline analysis.`, version, commit, date),
		Flags: []cli.Flag{logLevelFlag},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			collectCmd(),
			lintCmd(),
		},
	}
	return root.Run(ctx, args)
}
