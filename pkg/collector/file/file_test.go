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

package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odc-tools/odc/pkg/artifact"
	"github.com/odc-tools/odc/pkg/manifest"
	"github.com/odc-tools/odc/pkg/resulttree"
)

func newTestTree(t *testing.T) *resulttree.Tree {
	t.Helper()
	tree := resulttree.New(filepath.Join(t.TempDir(), "run"), "HOST1")
	require.NoError(t, tree.Init())
	return tree
}

func TestCollect_GlobAndZeroLengthFilter(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "empty.log"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "app.log"), []byte("0123456789"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "ignored.txt"), []byte("x"), 0o644))

	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{{Value: filepath.Join(srcDir, "*.log"), Team: "Net"}}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	require.Len(t, artifacts, 1)

	a := artifacts[0]
	assert.Equal(t, "P1", a.Package)
	assert.Equal(t, artifact.KindFile, a.Kind)
	assert.Equal(t, "Net", a.Team)
	assert.Equal(t, filepath.Join(tree.Root(), "P1", "Files", "Net", "HOST1_app.log"), a.Path)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))
}

func TestCollect_NoMatchesIsNotAFailure(t *testing.T) {
	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{{Value: filepath.Join(t.TempDir(), "nothing", "*.log")}}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Empty(t, artifacts)
}

func TestCollect_UnresolvedEnvReferencePassesThrough(t *testing.T) {
	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{{Value: `%ODC_DOES_NOT_EXIST%\*.log`}}}

	// The unexpanded pattern matches nothing; lenient policy says this is
	// an empty result, not an error.
	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Empty(t, artifacts)
}

func TestCollect_DefaultTeam(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.log"), []byte("data"), 0o644))

	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{{Value: filepath.Join(srcDir, "a.log")}}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	require.Len(t, artifacts, 1)
	assert.Equal(t, manifest.DefaultTeam, artifacts[0].Team)
	assert.Contains(t, artifacts[0].Path, filepath.Join("Files", "General"))
}

func TestCollect_DirectoriesSkipped(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "sub.log"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "real.log"), []byte("x"), 0o644))

	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{{Value: filepath.Join(srcDir, "*.log")}}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	require.Len(t, artifacts, 1)
	assert.Contains(t, artifacts[0].Path, "HOST1_real.log")
}

func TestCollect_SameBasenameLastWriterWins(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "app.log"), []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "app.log"), []byte("second"), 0o644))

	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{
		{Value: filepath.Join(dirA, "*.log"), Team: "Net"},
		{Value: filepath.Join(dirB, "*.log"), Team: "Net"},
	}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)

	// Both copies are counted even though they land on the same path.
	require.Len(t, artifacts, 2)
	assert.Equal(t, artifacts[0].Path, artifacts[1].Path)

	data, err := os.ReadFile(artifacts[1].Path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestCollect_ContextCanceled(t *testing.T) {
	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.FileTask{{Value: "/tmp/*.log"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.Collect(ctx, tree, "P1")
	require.ErrorIs(t, err, context.Canceled)
}
