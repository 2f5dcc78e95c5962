// Package archiver packages a populated result tree into a single zip
// archive for offline analysis.
//
// Compression contention is the interesting failure mode: another
// diagnostic tool may hold a lock on a file while it is being archived. The
// archiver handles this with a generic bounded wait (see pkg/retry)
// parameterized by a "has the holder released it?" predicate, followed by
// exactly one retry. Persistent contention past the retry is terminal and
// surfaces as ARCHIVE_FAILED.
//
// Whether archiving succeeds or fails, the uncompressed tree is removed
// best-effort, so no run ever leaves a half-collected tree occupying disk.
package archiver
