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

package collector

import (
	"testing"
	"time"

	"github.com/odc-tools/odc/pkg/collector/command"
	"github.com/odc-tools/odc/pkg/collector/file"
	"github.com/odc-tools/odc/pkg/manifest"
)

func TestDefaultFactory_CreateFileCollector(t *testing.T) {
	factory := NewDefaultFactory()

	tasks := []manifest.FileTask{{Value: "/tmp/*.log", Team: "Net"}}
	col := factory.CreateFileCollector(tasks)
	if col == nil {
		t.Fatal("Expected non-nil collector")
	}

	fc, ok := col.(*file.Collector)
	if !ok {
		t.Fatal("Expected *file.Collector")
	}
	if len(fc.Tasks) != 1 || fc.Tasks[0].Team != "Net" {
		t.Errorf("Expected configured tasks, got %v", fc.Tasks)
	}
}

func TestDefaultFactory_CreateCommandCollector(t *testing.T) {
	factory := NewDefaultFactory(WithCommandTimeout(42 * time.Second))

	col := factory.CreateCommandCollector([]manifest.CommandTask{{Type: manifest.CommandShell, Value: "hostname"}})
	cc, ok := col.(*command.Collector)
	if !ok {
		t.Fatal("Expected *command.Collector")
	}
	if cc.Timeout != 42*time.Second {
		t.Errorf("Expected timeout 42s, got %v", cc.Timeout)
	}
}

func TestDefaultFactory_AllCollectors(t *testing.T) {
	factory := NewDefaultFactory()

	collectors := []Collector{
		factory.CreateFileCollector(nil),
		factory.CreateRegistryCollector(nil),
		factory.CreateEventLogCollector(nil),
		factory.CreateCommandCollector(nil),
	}

	for i, col := range collectors {
		if col == nil {
			t.Errorf("Collector %d returned nil", i)
		}
	}
}

func TestNewDefaultFactory_Defaults(t *testing.T) {
	factory := NewDefaultFactory()

	if factory.CommandTimeout != command.DefaultTimeout {
		t.Errorf("expected default command timeout, got %v", factory.CommandTimeout)
	}
}
