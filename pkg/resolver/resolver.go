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

// Package resolver expands environment references and strips manifest
// authoring artifacts from path and registry key expressions.
//
// Resolution is deliberately lenient and never errors: an unresolvable
// %VAR% reference passes through unexpanded, and the subsequent existence
// check on the resulting path is expected to fail harmlessly with an empty
// result rather than aborting the task.
package resolver

import (
	"os"
	"regexp"
	"strings"
)

// envRefPattern matches Windows-style %NAME% environment references.
var envRefPattern = regexp.MustCompile(`%[A-Za-z0-9_()]+%`)

// quoteStripper removes stray quote characters that commonly leak into
// manifest-authored path values.
var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// ExpandPath returns the path expression with quote characters removed and
// %VAR% environment references expanded. References to unset variables are
// left in place.
func ExpandPath(raw string) string {
	return expandEnv(strings.TrimSpace(quoteStripper.Replace(raw)))
}

// StripKeyWildcard returns a registry key expression cleaned for export:
// quotes removed and a trailing \* wildcard suffix stripped. The suffix
// asks for the whole subtree, which is what reg export produces by default
// for a bare key.
func StripKeyWildcard(key string) string {
	cleaned := strings.TrimSpace(quoteStripper.Replace(key))
	return strings.TrimSuffix(cleaned, `\*`)
}

func expandEnv(s string) string {
	return envRefPattern.ReplaceAllStringFunc(s, func(ref string) string {
		name := ref[1 : len(ref)-1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return ref
	})
}
