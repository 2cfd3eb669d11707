// Package probe inspects source files with a single ffprobe JSON call. The
// result only feeds the optional per-file stats line; a probe failure never
// stops a batch.
package probe
