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

package eventlog

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

func TestCollect_ZeroLengthLogsAreCopied(t *testing.T) {
	srcDir := t.TempDir()
	// An empty log container is still collected: presence vs. absence of
	// the channel is itself diagnostic.
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "Application.evtx"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "System.evtx"), []byte("records"), 0o644))

	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.EventLogTask{{Value: filepath.Join(srcDir, "*.evtx"), Team: "Core"}}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	require.Len(t, artifacts, 2)

	for _, a := range artifacts {
		assert.Equal(t, artifact.KindEventLog, a.Kind)
		assert.Equal(t, "Core", a.Team)
		assert.Contains(t, a.Path, filepath.Join("P1", "EventLogs", "Core", "HOST1_"))
		assert.FileExists(t, a.Path)
	}
}

func TestCollect_SameBasenameLastWriterWins(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "System.evtx"), []byte("first"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "System.evtx"), []byte("second"), 0o644))

	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.EventLogTask{
		{Value: filepath.Join(dirA, "*.evtx")},
		{Value: filepath.Join(dirB, "*.evtx")},
	}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	require.Len(t, artifacts, 2)
	assert.Equal(t, artifacts[0].Path, artifacts[1].Path)

	data, err := os.ReadFile(artifacts[1].Path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestCollect_NoMatches(t *testing.T) {
	tree := newTestTree(t)
	c := &Collector{Tasks: []manifest.EventLogTask{{Value: filepath.Join(t.TempDir(), "*.evtx")}}}

	artifacts, failed, err := c.Collect(context.Background(), tree, "P1")
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Empty(t, artifacts)
}
