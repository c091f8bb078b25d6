// Package core implements the Knowledge Network: a growing undirected graph
// of artifacts, an append-only epoch log, and the primitive operations that
// mutate it — Orient, Grow, RecordAccess, and FrontierOf.
//
// An artifact is never deleted and its payload is never mutated once
// inserted; only its neighbor set (via mirrored edges from later growths)
// and its per-epoch access counts change over time. Every Orient or Grow
// call appends exactly one epoch to the log, so len(epochs) is a strictly
// increasing clock mechanisms can use to bound "recent" activity.
//
// All mutation goes through a *Network value behind a single RWMutex. There
// is no parallelism in the Integration Loop (spec: mechanisms run strictly
// in sequence), so the lock exists for safety under test harnesses and
// future callers, not to support concurrent mechanisms today.
package core
