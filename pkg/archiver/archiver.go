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

package archiver

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"

	"github.com/odc-tools/odc/pkg/errors"
	"github.com/odc-tools/odc/pkg/retry"
)

// CompressFunc compresses srcDir into the archive at destPath, overwriting
// any existing file. The field exists so tests can simulate compression
// failures such as lock contention.
type CompressFunc func(ctx context.Context, srcDir, destPath string) error

// LockCheck reports whether the resource contending with compression has
// been released. The archiver polls it between the first attempt and the
// retry.
type LockCheck func(ctx context.Context) bool

// Option configures an Archiver.
type Option func(*Archiver)

// WithRetryPolicy sets the wait policy applied between the two compression
// attempts.
func WithRetryPolicy(p retry.Policy) Option {
	return func(a *Archiver) { a.policy = p }
}

// WithCompressFunc overrides the zip compression implementation.
func WithCompressFunc(f CompressFunc) Option {
	return func(a *Archiver) { a.compress = f }
}

// WithLockCheck sets the predicate that decides when the contended
// resource is free again.
func WithLockCheck(f LockCheck) Option {
	return func(a *Archiver) { a.lockCheck = f }
}

// Archiver compresses a populated result tree into a single zip archive
// and removes the uncompressed tree afterwards.
//
// The state machine is Idle → Compressing → {Done | Retrying → Compressing
// → {Done | Failed}}: one initial attempt, one bounded wait for the
// contending holder to let go, exactly one retry. Whatever the outcome, the
// source tree is removed so a failed run never leaves staging data on disk.
type Archiver struct {
	policy    retry.Policy
	compress  CompressFunc
	lockCheck LockCheck
}

// New creates an Archiver with the default zip compressor and retry
// policy. Without an explicit lock predicate, a failed first attempt waits
// one full poll interval before the retry.
func New(opts ...Option) *Archiver {
	a := &Archiver{
		policy:   retry.DefaultPolicy(),
		compress: zipDir,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Archive compresses srcDir into destPath. A failed first attempt triggers
// a bounded wait on the lock predicate and exactly one retry; a second
// failure returns ARCHIVE_FAILED. srcDir is removed in every case.
func (a *Archiver) Archive(ctx context.Context, srcDir, destPath string) error {
	defer func() {
		if err := os.RemoveAll(srcDir); err != nil {
			slog.Warn("failed to remove result tree after archiving", "dir", srcDir, "error", err)
		}
	}()

	slog.Info("creating archive", "source", srcDir, "archive", destPath)
	err := a.compress(ctx, srcDir, destPath)
	if err == nil {
		return nil
	}

	slog.Warn("compression failed, waiting for contending holder before retry",
		"archive", destPath, "error", err)

	lock := a.lockCheck
	if lock == nil {
		// No concrete holder to watch. Report held once so the wait loop
		// sleeps a full interval before the retry instead of returning on
		// its pre-tick check.
		first := true
		lock = func(context.Context) bool {
			held := first
			first = false
			return !held
		}
	}

	if werr := a.policy.WaitUntilReleased(ctx, lock); werr != nil {
		if ctx.Err() != nil {
			return werr
		}
		// Wait budget exhausted. The retry still gets its one attempt:
		// the holder may have exited without the predicate noticing.
		slog.Warn("wait for lock release gave up, retrying anyway", "error", werr)
	}

	if err := a.compress(ctx, srcDir, destPath); err != nil {
		return errors.Wrap(errors.ErrCodeArchive, "archive creation failed after retry", err)
	}
	return nil
}

// zipDir writes srcDir's contents into a zip archive at destPath,
// preserving the relative directory structure. Deflate streams go through
// the klauspost encoder.
func zipDir(ctx context.Context, srcDir, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %q: %w", destPath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	walkErr := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk error: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		// Skip the root directory itself
		if path == srcDir {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("failed to create file header: %w", err)
		}
		header.Name = filepath.ToSlash(relPath)

		if info.IsDir() {
			header.Name += "/"
			_, headerErr := zw.CreateHeader(header)
			return headerErr
		}

		header.Method = zip.Deflate

		writer, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create zip entry: %w", err)
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		if _, err := io.Copy(writer, file); err != nil {
			return fmt.Errorf("failed to copy file content: %w", err)
		}
		return nil
	})

	if walkErr != nil {
		zw.Close()
		return walkErr
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return out.Close()
}
