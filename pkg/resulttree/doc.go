// Package resulttree owns the staging directory layout for a collection run.
//
// Layout, relative to the run-scoped root:
//
//	<PackageID>/Files/<Team>/<HOST>_<filename>
//	<PackageID>/RegistryKeys/<Team>/<HOST>_<name>.txt
//	<PackageID>/EventLogs/<Team>/<HOST>_<filename>
//	<PackageID>/Commands/<Team>/<HOST>_<name>.txt
//
// Package IDs and team labels act as partition keys: each collector
// invocation only ever creates files under its own package/kind/team
// directory, so parallel collectors never contend on the same leaf.
// Directory creation is create-if-absent, not create-exclusive.
//
// The tree's lifecycle is owned by exactly one run: cleared if stale at run
// start, populated during dispatch, consumed once by the archiver, and
// removed afterwards whether archiving succeeded or not.
package resulttree
