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

// Package manifest defines the typed collection manifest model and loader.
//
// A manifest is an ordered sequence of packages; each package carries up to
// four task lists (Files, RegistryKeys, EventLogs, Commands). The loader
// accepts the XML form:
//
//	<Collection>
//	  <Package ID="Networking">
//	    <Files>
//	      <File Value="%SystemRoot%\Logs\*.log" Team="Net"/>
//	    </Files>
//	    <Commands>
//	      <Command Type="Shell" Value="ipconfig /all" OutputFileName="ipconfig"/>
//	    </Commands>
//	  </Package>
//	</Collection>
//
// or an equivalent YAML form:
//
//	packages:
//	  - id: Networking
//	    files:
//	      - value: '%SystemRoot%\Logs\*.log'
//	        team: Net
//	    commands:
//	      - type: Shell
//	        value: ipconfig /all
//	        outputFileName: ipconfig
//
// Optional attributes are modeled as plain string fields with value-level
// defaulting (TeamLabel, ExplicitOutputName) rather than presence probing.
//
// The manifest is a trusted, operator-controlled input: command values are
// executed through an OS interpreter by the command collector. Never feed a
// network-sourced untrusted document to this engine.
package manifest
