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

// Package errors provides structured error types for the collection engine.
//
// The engine distinguishes three failure classes:
//
//   - MANIFEST_ERROR: the manifest is malformed. Raised before any
//     collection starts and always fatal.
//   - COLLECTION_ERROR: a single task failed. Logged and isolated; the run
//     continues with the remaining tasks.
//   - ARCHIVE_FAILED: the final archive could not be produced after the
//     retry budget was exhausted. Fatal, but staging cleanup still runs.
//
// Errors carry a code, a human-readable message, an optional cause, and
// optional context for debugging:
//
//	err := errors.Wrap(errors.ErrCodeCollection, "registry export failed", cause)
//
// StructuredError implements Unwrap, so errors.Is and errors.As from the
// standard library work across the wrapping chain.
package errors
