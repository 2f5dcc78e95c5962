// Package cli implements the odcctl command line interface.
//
// Commands:
//   - collect: run a full manifest-driven collection and produce the archive
//   - lint: parse and validate a manifest without collecting
//
// Flags can also be supplied through ODC_-prefixed environment variables
// (ODC_MANIFEST, ODC_OUTPUT, ODC_LOG_LEVEL).
package cli
