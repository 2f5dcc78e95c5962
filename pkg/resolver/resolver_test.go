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

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("ODC_TEST_ROOT", "/var/log")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path", `C:\Temp\trace.etl`, `C:\Temp\trace.etl`},
		{"env reference", `%ODC_TEST_ROOT%/app`, "/var/log/app"},
		{"unset reference passes through", `%ODC_NOT_SET%/app`, `%ODC_NOT_SET%/app`},
		{"quotes stripped", `"C:\Program Files\App\*.log"`, `C:\Program Files\App\*.log`},
		{"single quotes stripped", `'%ODC_TEST_ROOT%'`, "/var/log"},
		{"surrounding whitespace", "  /tmp/x  ", "/tmp/x"},
		{"multiple references", `%ODC_TEST_ROOT%/%ODC_TEST_ROOT%`, "/var/log//var/log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestStripKeyWildcard(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wildcard suffix", `HKLM\SOFTWARE\Microsoft\*`, `HKLM\SOFTWARE\Microsoft`},
		{"no wildcard", `HKLM\SOFTWARE\Microsoft`, `HKLM\SOFTWARE\Microsoft`},
		{"quoted with wildcard", `"HKLM\SYSTEM\CurrentControlSet\*"`, `HKLM\SYSTEM\CurrentControlSet`},
		{"interior star kept", `HKLM\SOFT*WARE`, `HKLM\SOFT*WARE`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripKeyWildcard(tt.in))
		})
	}
}
