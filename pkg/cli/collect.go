/*
Copyright © 2025 ODC Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/odc-tools/odc/pkg/archiver"
	"github.com/odc-tools/odc/pkg/collector"
	"github.com/odc-tools/odc/pkg/manifest"
	"github.com/odc-tools/odc/pkg/retry"
	"github.com/odc-tools/odc/pkg/runner"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Collect diagnostic artifacts per the manifest and archive them",
		Description: `Run a full collection: load the manifest, walk its packages, collect every
task, and package the results into a single zip archive.

Artifacts are staged under <HOST>_CollectedData_<timestamp>/ in the output
directory and archived to the same name with a .zip extension. The staging
tree is always removed afterwards, even when archiving fails.

Per-task failures (missing files, denied registry keys, crashing commands)
are logged and skipped; they never abort the run. The run itself only fails
on a malformed manifest or on archive creation failing past its retry.

The manifest is executed as trusted operator input: command tasks run
through the OS shell or scripting engine. Do not point this tool at
manifests from untrusted sources.

# Examples

Collect with the default sequential dispatch:
  odcctl collect --manifest intune.xml

Collect into a specific directory with four parallel package workers:
  odcctl collect -m manifest.yaml --output-dir D:\Support --workers 4

Fail the process when any task was skipped (useful for automation):
  odcctl collect -m manifest.yaml --fail-on-error`,
		Flags: []cli.Flag{
			manifestFlag,
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory for the staging tree and final archive",
				Sources: cli.EnvVars("ODC_OUTPUT"),
				Value:   ".",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of packages collected concurrently (1 = sequential)",
				Value: 1,
			},
			&cli.DurationFlag{
				Name:  "command-timeout",
				Usage: "Per-command execution bound for command tasks",
				Value: 5 * time.Minute,
			},
			&cli.DurationFlag{
				Name:  "lock-wait",
				Usage: "Total wait budget for a locked file before the archive retry",
				Value: retry.DefaultMaxWait,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any task failed or was skipped",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manifestPath := cmd.String("manifest")

			data, err := os.ReadFile(manifestPath)
			if err != nil {
				return fmt.Errorf("failed to read manifest %q: %w", manifestPath, err)
			}

			m, err := manifest.Load(data)
			if err != nil {
				return fmt.Errorf("failed to load manifest %q: %w", manifestPath, err)
			}

			slog.Info("manifest loaded", "path", manifestPath, "packages", len(m.Packages))

			r := &runner.Runner{
				Manifest: m,
				Factory: collector.NewDefaultFactory(
					collector.WithCommandTimeout(cmd.Duration("command-timeout")),
				),
				Archiver: archiver.New(
					archiver.WithRetryPolicy(retry.Policy{
						Interval: retry.DefaultInterval,
						MaxWait:  cmd.Duration("lock-wait"),
					}),
				),
				OutputDir: cmd.String("output-dir"),
				Workers:   int(cmd.Int("workers")),
			}

			summary, err := r.Run(ctx)
			if err != nil {
				return err
			}

			slog.Info("run finished",
				"archive", summary.ArchivePath,
				"packages", summary.Packages,
				"artifacts", summary.Collected,
				"failures", summary.Failed)

			if cmd.Bool("fail-on-error") && summary.Failed > 0 {
				return fmt.Errorf("collection completed with %d failed task(s)", summary.Failed)
			}
			return nil
		},
	}
}
