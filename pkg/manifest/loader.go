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

package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odc-tools/odc/pkg/errors"
)

// utf8BOM is stripped before format detection; manifests authored on
// Windows frequently carry one.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load parses raw manifest bytes into a Manifest. Both the XML form (root
// element Collection) and an equivalent YAML form are accepted;
// the format is detected from the content. Malformed input, an unrecognized
// root element, or a schema violation yields a MANIFEST_ERROR. A manifest
// with zero packages is valid.
//
// Load performs no I/O; fetching manifest bytes is the caller's concern.
func Load(data []byte) (*Manifest, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(trimmed) == 0 {
		return nil, errors.New(errors.ErrCodeManifest, "manifest is empty")
	}

	var (
		m   *Manifest
		err error
	)
	if trimmed[0] == '<' {
		m, err = loadXML(trimmed)
	} else {
		m, err = loadYAML(trimmed)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadXML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifest, "failed to parse XML manifest", err)
	}
	return &m, nil
}

func loadYAML(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeManifest, "failed to parse YAML manifest", err)
	}
	return &m, nil
}

// validate enforces the schema-level invariants: non-empty package
// identifiers and a recognized command type tag. Semantic correctness of
// paths, keys, and command strings is deliberately not checked here.
func validate(m *Manifest) error {
	for i, pkg := range m.Packages {
		if strings.TrimSpace(pkg.ID) == "" {
			return errors.NewWithContext(errors.ErrCodeManifest,
				"package is missing an identifier",
				map[string]any{"index": i})
		}
		for j, cmd := range pkg.Commands {
			switch cmd.Type {
			case CommandShell, CommandScripted:
			default:
				return errors.NewWithContext(errors.ErrCodeManifest,
					fmt.Sprintf("unknown command type %q", cmd.Type),
					map[string]any{"package": pkg.ID, "index": j})
			}
		}
	}
	return nil
}
