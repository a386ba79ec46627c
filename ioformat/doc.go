// Package ioformat implements the ASCII segment-file reader and
// intersection-output writer collaborators. Neither type reaches into
// the sweep engine's internals — they only depend on the geom and sweep
// result types the core exposes.
package ioformat
