/*
Copyright © 2025 ODC Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLint_ValidManifest(t *testing.T) {
	path := writeManifest(t, `<Collection><Package ID="P1"/></Collection>`)

	err := Run(context.Background(), []string{"odcctl", "lint", "--manifest", path})
	require.NoError(t, err)
}

func TestLint_InvalidManifest(t *testing.T) {
	path := writeManifest(t, `<Wrong/>`)

	err := Run(context.Background(), []string{"odcctl", "lint", "--manifest", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLint_MissingFile(t *testing.T) {
	err := Run(context.Background(), []string{"odcctl", "lint", "--manifest", filepath.Join(t.TempDir(), "nope.xml")})
	require.Error(t, err)
}

func TestCollect_EndToEnd(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "app.log"), []byte("diagnostic data"), 0o644))

	manifestPath := writeManifest(t, `<Collection>
  <Package ID="P1">
    <Files>
      <File Value="`+filepath.Join(srcDir, "*.log")+`" Team="Net"/>
    </Files>
  </Package>
</Collection>`)

	outDir := t.TempDir()
	err := Run(context.Background(), []string{
		"odcctl", "collect",
		"--manifest", manifestPath,
		"--output-dir", outDir,
	})
	require.NoError(t, err)

	archives, err := filepath.Glob(filepath.Join(outDir, "*_CollectedData_*.zip"))
	require.NoError(t, err)
	require.Len(t, archives, 1)

	// Staging tree was consumed by archiving.
	dirs, err := filepath.Glob(filepath.Join(outDir, "*_CollectedData_*"))
	require.NoError(t, err)
	assert.Len(t, dirs, 1, "only the archive should remain")
}

func TestCollect_FailOnError(t *testing.T) {
	// A malformed glob pattern produces a counted task failure.
	manifestPath := writeManifest(t, `<Collection>
  <Package ID="P1">
    <Files>
      <File Value="`+filepath.Join(t.TempDir(), "[")+`"/>
    </Files>
  </Package>
</Collection>`)

	outDir := t.TempDir()
	err := Run(context.Background(), []string{
		"odcctl", "collect",
		"--manifest", manifestPath,
		"--output-dir", outDir,
		"--fail-on-error",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed task")
}
