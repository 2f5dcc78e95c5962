/*
Copyright © 2025 ODC Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/odc-tools/odc/pkg/manifest"
)

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lint",
		EnableShellCompletion: true,
		Usage:                 "Parse and validate a manifest without collecting anything",
		Description: `Load a manifest and report its structure. Useful for checking a manifest
before shipping it to a machine under investigation.

Validation covers structure only: a recognized root element, package
identifiers, and command type tags. Whether the referenced paths, registry
keys, or commands exist on the target machine is deliberately not checked.

# Examples

  odcctl lint --manifest intune.xml
  odcctl lint -m manifest.yaml`,
		Flags: []cli.Flag{
			manifestFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manifestPath := cmd.String("manifest")

			data, err := os.ReadFile(manifestPath)
			if err != nil {
				return fmt.Errorf("failed to read manifest %q: %w", manifestPath, err)
			}

			m, err := manifest.Load(data)
			if err != nil {
				return fmt.Errorf("manifest %q is invalid: %w", manifestPath, err)
			}

			files, registries, eventLogs, commands := 0, 0, 0, 0
			for _, pkg := range m.Packages {
				files += len(pkg.Files)
				registries += len(pkg.Registries)
				eventLogs += len(pkg.EventLogs)
				commands += len(pkg.Commands)
			}

			fmt.Fprintf(cmd.Writer, "manifest %s is valid\n", manifestPath)
			fmt.Fprintf(cmd.Writer, "  packages:      %d\n", len(m.Packages))
			fmt.Fprintf(cmd.Writer, "  file tasks:    %d\n", files)
			fmt.Fprintf(cmd.Writer, "  registry keys: %d\n", registries)
			fmt.Fprintf(cmd.Writer, "  event logs:    %d\n", eventLogs)
			fmt.Fprintf(cmd.Writer, "  commands:      %d\n", commands)
			return nil
		},
	}
}
