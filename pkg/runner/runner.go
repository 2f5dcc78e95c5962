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

package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/odc-tools/odc/pkg/archiver"
	"github.com/odc-tools/odc/pkg/artifact"
	"github.com/odc-tools/odc/pkg/collector"
	"github.com/odc-tools/odc/pkg/manifest"
	"github.com/odc-tools/odc/pkg/resulttree"
)

// Runner drives one collection run: it walks the manifest's packages,
// routes every task to its collector, and archives the populated result
// tree. The archiver is a barrier: it runs strictly after all dispatch
// work completes.
type Runner struct {
	// Manifest is the loaded collection manifest.
	Manifest *manifest.Manifest

	// Factory creates the per-kind collectors. Nil selects the default
	// factory.
	Factory collector.Factory

	// Archiver packages the result tree. Nil selects a default archiver.
	Archiver *archiver.Archiver

	// OutputDir is where the staging tree and final archive are created.
	// Empty means the current working directory.
	OutputDir string

	// Workers bounds how many packages are collected concurrently.
	// Values below 2 run packages strictly sequentially in manifest order.
	Workers int
}

// Run executes the collection and returns a summary. Per-task failures are
// logged, counted, and never abort the run; only manifest absence, context
// cancellation, and exhausted archive retries surface as errors. The
// staging tree is removed whether archiving succeeds or not.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.Manifest == nil {
		return nil, fmt.Errorf("runner requires a loaded manifest")
	}

	factory := r.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory()
	}
	arch := r.Archiver
	if arch == nil {
		arch = archiver.New()
	}

	start := time.Now()
	defer func() {
		collectionDuration.Observe(time.Since(start).Seconds())
	}()

	host := resulttree.Hostname()
	runName := resulttree.RunName(host, start)

	outDir := r.OutputDir
	if outDir == "" {
		outDir = "."
	}
	root, err := filepath.Abs(filepath.Join(outDir, runName))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory %q: %w", outDir, err)
	}

	tree := resulttree.New(root, host)
	if err := tree.Init(); err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	slog.Info("starting collection",
		"host", host,
		"packages", len(r.Manifest.Packages),
		"root", root,
		"workers", r.Workers)

	summary := &Summary{
		Host:     host,
		Packages: len(r.Manifest.Packages),
	}
	var mu sync.Mutex

	record := func(artifacts []artifact.Artifact, failed int) {
		mu.Lock()
		summary.Collected += len(artifacts)
		summary.Failed += failed
		mu.Unlock()
		for _, a := range artifacts {
			artifactsTotal.WithLabelValues(string(a.Kind)).Inc()
		}
		taskFailuresTotal.Add(float64(failed))
	}

	if err := r.dispatch(ctx, factory, tree, record); err != nil {
		// Dispatch only errors on cancellation; do not leave the
		// half-collected tree behind.
		tree.Remove()
		collectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	archivePath := root + ".zip"
	if err := arch.Archive(ctx, tree.Root(), archivePath); err != nil {
		collectionTotal.WithLabelValues("error").Inc()
		return summary, err
	}

	summary.ArchivePath = archivePath
	summary.Duration = time.Since(start)
	collectionTotal.WithLabelValues("success").Inc()

	slog.Info("collection complete",
		"archive", archivePath,
		"artifacts", summary.Collected,
		"failures", summary.Failed,
		"duration", summary.Duration.Round(time.Millisecond))
	return summary, nil
}

// dispatch walks packages in manifest order. Within each package the task
// lists run in a fixed order and each list in document order; there is no
// ordering guarantee across packages when Workers permits parallelism.
func (r *Runner) dispatch(ctx context.Context, factory collector.Factory, tree *resulttree.Tree, record func([]artifact.Artifact, int)) error {
	if r.Workers < 2 {
		for _, pkg := range r.Manifest.Packages {
			if err := collectPackage(ctx, factory, tree, pkg, record); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for _, pkg := range r.Manifest.Packages {
		pkg := pkg
		g.Go(func() error {
			return collectPackage(gctx, factory, tree, pkg, record)
		})
	}
	return g.Wait()
}

// collectPackage runs all four task lists of one package. Each list is
// independently optional, and a task failure never short-circuits the
// remaining tasks.
func collectPackage(ctx context.Context, factory collector.Factory, tree *resulttree.Tree, pkg manifest.Package, record func([]artifact.Artifact, int)) error {
	slog.Info("collecting package",
		"package", pkg.ID,
		"files", len(pkg.Files),
		"registryKeys", len(pkg.Registries),
		"eventLogs", len(pkg.EventLogs),
		"commands", len(pkg.Commands))

	collectors := []collector.Collector{
		factory.CreateFileCollector(pkg.Files),
		factory.CreateRegistryCollector(pkg.Registries),
		factory.CreateEventLogCollector(pkg.EventLogs),
		factory.CreateCommandCollector(pkg.Commands),
	}

	for _, col := range collectors {
		artifacts, failed, err := col.Collect(ctx, tree, pkg.ID)
		record(artifacts, failed)
		if err != nil {
			return err
		}
	}
	return nil
}
