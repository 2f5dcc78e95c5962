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

package resulttree

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/odc-tools/odc/pkg/artifact"
)

// timestampLayout renders the run start time for tree and archive names.
// The rendered value is always UTC; the literal suffix records that.
const timestampLayout = "01_02_2006_15_04"

// segmentSanitizer removes characters that are invalid in file names on
// Windows, plus quotes left over from manifest authoring.
var segmentSanitizer = strings.NewReplacer(
	`<`, "", `>`, "", `:`, "", `"`, "", `/`, "",
	`\`, "", `|`, "", `?`, "", `*`, "", `'`, "",
)

// Tree owns the on-disk staging root for one collection run. All
// destination paths are computed through it so the naming convention stays
// in one place. Directory creation is idempotent, which keeps sibling tasks
// race-safe when the dispatcher runs packages in parallel.
type Tree struct {
	root string
	host string
}

// RunName returns the run-scoped base name shared by the staging root and
// the final archive: <HOST>_CollectedData_<MM_DD_YYYY_HH_MM>_UTC. The start
// time is converted to UTC and the literal UTC suffix stands in for a
// numeric zone offset, which would need characters that are invalid in
// file names.
func RunName(host string, start time.Time) string {
	return fmt.Sprintf("%s_CollectedData_%s_UTC",
		SanitizeSegment(host), start.UTC().Format(timestampLayout))
}

// Hostname returns the sanitized local host identifier used to prefix
// artifact names. Falls back to "localhost" if the hostname is unavailable.
func Hostname() string {
	host, err := os.Hostname()
	if err != nil || strings.TrimSpace(host) == "" {
		slog.Warn("hostname unavailable, using fallback", "error", err)
		return "localhost"
	}
	return SanitizeSegment(host)
}

// New creates a Tree rooted at the given directory. No file system
// operations are performed until Init.
func New(root, host string) *Tree {
	return &Tree{root: root, host: host}
}

// Root returns the absolute staging root directory.
func (t *Tree) Root() string { return t.root }

// Host returns the host identifier used in artifact names.
func (t *Tree) Host() string { return t.host }

// Init prepares the staging root for a run. A stale root left behind by a
// previous run is cleared first; the run must start from an empty tree.
func (t *Tree) Init() error {
	if _, err := os.Stat(t.root); err == nil {
		slog.Warn("clearing stale result tree", "root", t.root)
		if err := os.RemoveAll(t.root); err != nil {
			return fmt.Errorf("failed to clear stale result tree %q: %w", t.root, err)
		}
	}
	if err := os.MkdirAll(t.root, 0o755); err != nil {
		return fmt.Errorf("failed to create result tree root %q: %w", t.root, err)
	}
	return nil
}

// DestPath computes the destination for one artifact following the fixed
// layout <root>/<packageID>/<kind>/<team>/<HOST>_<name> and creates the
// containing directory if absent. Package, team, and name segments are
// sanitized before use.
func (t *Tree) DestPath(pkgID string, kind artifact.Kind, team, name string) (string, error) {
	dir := filepath.Join(t.root,
		SanitizeSegment(pkgID),
		string(kind),
		SanitizeSegment(team),
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create destination directory %q: %w", dir, err)
	}
	return filepath.Join(dir, t.host+"_"+SanitizeSegment(name)), nil
}

// Remove deletes the staging root. Removal is best-effort: the engine must
// never leave a half-collected tree on disk, but a removal failure after
// archiving is not worth failing the run over.
func (t *Tree) Remove() {
	if err := os.RemoveAll(t.root); err != nil {
		slog.Warn("failed to remove result tree", "root", t.root, "error", err)
	}
}

// SanitizeSegment strips characters that are not valid in a path segment
// and trims surrounding whitespace and dots. An empty result is replaced
// with an underscore so path construction never produces empty segments.
func SanitizeSegment(s string) string {
	cleaned := segmentSanitizer.Replace(s)
	cleaned = strings.Map(func(r rune) rune {
		if r < 0x20 {
			return -1
		}
		return r
	}, cleaned)
	cleaned = strings.Trim(cleaned, " .")
	if cleaned == "" {
		return "_"
	}
	return cleaned
}
