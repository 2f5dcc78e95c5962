// Copyright (c) 2025, ODC Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package command executes manifest-supplied command strings and captures
// their combined output into the result tree.
//
// Shell tasks run through the native command interpreter; Scripted tasks
// run through the host scripting engine. Both are a deliberate, narrowly
// scoped "execute external command, capture output" capability: the
// manifest is a trusted operator-controlled input, and command values must
// never come from untrusted sources.
package command

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odc-tools/odc/pkg/artifact"
	"github.com/odc-tools/odc/pkg/manifest"
	"github.com/odc-tools/odc/pkg/resulttree"
)

// DefaultTimeout bounds a single command execution so one unresponsive
// command cannot stall the whole run.
const DefaultTimeout = 5 * time.Minute

// RunFunc executes one command task and returns its combined output. The
// field exists so tests can substitute interpreter invocation.
type RunFunc func(ctx context.Context, task manifest.CommandTask) ([]byte, error)

// Collector executes the command tasks of one package and captures each
// command's combined stdout/stderr into the result tree.
type Collector struct {
	Tasks []manifest.CommandTask

	// Timeout bounds each command execution. Zero selects DefaultTimeout.
	Timeout time.Duration

	// Run overrides interpreter invocation. Nil selects the default,
	// which branches on the task type and host OS.
	Run RunFunc
}

// Collect executes each task and writes its captured output under
// <pkg>/Commands/<team>/<HOST>_<name>.txt. When the output name is absent
// or the NA sentinel, a generated unique token is used, so repeated runs
// never collide. A failing command is logged and skipped, never fatal.
func (c *Collector) Collect(ctx context.Context, tree *resulttree.Tree, pkgID string) ([]artifact.Artifact, int, error) {
	run := c.Run
	if run == nil {
		run = runInterpreter
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var artifacts []artifact.Artifact
	failed := 0

	for _, task := range c.Tasks {
		if err := ctx.Err(); err != nil {
			return artifacts, failed, err
		}

		team := task.TeamLabel()
		dest, err := tree.DestPath(pkgID, artifact.KindCommand, team, outputName(task))
		if err != nil {
			slog.Error("failed to prepare destination", "package", pkgID, "command", task.Value, "error", err)
			failed++
			continue
		}

		cmdCtx, cancel := context.WithTimeout(ctx, timeout)
		out, err := run(cmdCtx, task)
		cancel()
		if err != nil {
			slog.Error("command failed",
				"package", pkgID, "type", task.Type, "command", task.Value,
				"output", strings.TrimSpace(string(out)), "error", err)
			failed++
			continue
		}

		if err := os.WriteFile(dest, out, 0o644); err != nil {
			slog.Error("failed to write command output", "package", pkgID, "path", dest, "error", err)
			failed++
			continue
		}

		artifacts = append(artifacts, artifact.Artifact{
			Path:    dest,
			Package: pkgID,
			Kind:    artifact.KindCommand,
			Team:    team,
		})
		slog.Info("collected command output", "package", pkgID, "team", team, "command", task.Value, "path", dest)
	}

	return artifacts, failed, nil
}

// outputName computes the destination file name: the explicit
// OutputFileName when present, otherwise a generated unique token. The
// .txt extension is always enforced.
func outputName(task manifest.CommandTask) string {
	name, ok := task.ExplicitOutputName()
	if !ok {
		name = uuid.NewString()
	}
	if !strings.HasSuffix(strings.ToLower(name), ".txt") {
		name += ".txt"
	}
	return name
}

// runInterpreter executes the task through the interpreter selected by its
// type, capturing combined stdout/stderr.
func runInterpreter(ctx context.Context, task manifest.CommandTask) ([]byte, error) {
	var cmd *exec.Cmd
	switch task.Type {
	case manifest.CommandScripted:
		if runtime.GOOS == "windows" {
			cmd = exec.CommandContext(ctx, "powershell.exe",
				"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", task.Value)
		} else {
			cmd = exec.CommandContext(ctx, "pwsh", "-NoProfile", "-Command", task.Value)
		}
	default: // manifest.CommandShell
		if runtime.GOOS == "windows" {
			cmd = exec.CommandContext(ctx, "cmd.exe", "/c", task.Value)
		} else {
			cmd = exec.CommandContext(ctx, "/bin/sh", "-c", task.Value)
		}
	}
	return cmd.CombinedOutput()
}
