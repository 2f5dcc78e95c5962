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
	"encoding/xml"
	"strings"
)

// DefaultTeam is the team label applied to tasks that do not specify one.
const DefaultTeam = "General"

// NoOutputName is the sentinel an author may use to explicitly request a
// generated output file name for a command task.
const NoOutputName = "NA"

// CommandType selects the interpreter used to execute a command task.
type CommandType string

const (
	// CommandShell runs the command through the native shell interpreter.
	CommandShell CommandType = "Shell"
	// CommandScripted runs the command through the host scripting engine.
	CommandScripted CommandType = "Scripted"
)

// Manifest is the typed representation of a collection manifest: an ordered
// sequence of packages, each holding up to four task lists.
type Manifest struct {
	XMLName  xml.Name  `xml:"Collection" yaml:"-"`
	Packages []Package `xml:"Package" yaml:"packages"`
}

// Package groups related collection tasks under one identifier. The ID is
// used as a result-tree path segment and is sanitized before use. All four
// task lists are optional.
type Package struct {
	ID         string         `xml:"ID,attr" yaml:"id"`
	Files      []FileTask     `xml:"Files>File" yaml:"files,omitempty"`
	Registries []RegistryTask `xml:"RegistryKeys>RegistryKey" yaml:"registryKeys,omitempty"`
	EventLogs  []EventLogTask `xml:"EventLogs>EventLog" yaml:"eventLogs,omitempty"`
	Commands   []CommandTask  `xml:"Commands>Command" yaml:"commands,omitempty"`
}

// FileTask copies file system entries matching a path expression. The value
// may contain environment variable references and OS glob wildcards.
type FileTask struct {
	Value string `xml:"Value,attr" yaml:"value"`
	Team  string `xml:"Team,attr,omitempty" yaml:"team,omitempty"`
}

// TeamLabel returns the task's team label, defaulting to General.
func (t FileTask) TeamLabel() string { return teamOrDefault(t.Team) }

// RegistryTask exports one registry key. A trailing wildcard suffix on the
// key is stripped before export. When OutputFileName is empty the name is
// derived from the key path.
type RegistryTask struct {
	Value          string `xml:"Value,attr" yaml:"value"`
	Team           string `xml:"Team,attr,omitempty" yaml:"team,omitempty"`
	OutputFileName string `xml:"OutputFileName,attr,omitempty" yaml:"outputFileName,omitempty"`
}

// TeamLabel returns the task's team label, defaulting to General.
func (t RegistryTask) TeamLabel() string { return teamOrDefault(t.Team) }

// EventLogTask copies event log files matching a path expression. Unlike
// FileTask, matched entries are copied regardless of size.
type EventLogTask struct {
	Value string `xml:"Value,attr" yaml:"value"`
	Team  string `xml:"Team,attr,omitempty" yaml:"team,omitempty"`
}

// TeamLabel returns the task's team label, defaulting to General.
func (t EventLogTask) TeamLabel() string { return teamOrDefault(t.Team) }

// CommandTask executes a command string through the interpreter selected by
// Type and captures its combined output.
type CommandTask struct {
	Type           CommandType `xml:"Type,attr" yaml:"type"`
	Value          string      `xml:"Value,attr" yaml:"value"`
	Team           string      `xml:"Team,attr,omitempty" yaml:"team,omitempty"`
	OutputFileName string      `xml:"OutputFileName,attr,omitempty" yaml:"outputFileName,omitempty"`
}

// TeamLabel returns the task's team label, defaulting to General.
func (t CommandTask) TeamLabel() string { return teamOrDefault(t.Team) }

// ExplicitOutputName returns the author-supplied output file name and true,
// or false when the name is absent or the NA sentinel, in which case the
// collector generates a unique name.
func (t CommandTask) ExplicitOutputName() (string, bool) {
	name := strings.TrimSpace(t.OutputFileName)
	if name == "" || strings.EqualFold(name, NoOutputName) {
		return "", false
	}
	return name, true
}

func teamOrDefault(team string) string {
	if strings.TrimSpace(team) == "" {
		return DefaultTeam
	}
	return team
}
