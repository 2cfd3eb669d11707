// Package naming decides where each compressed file is written.
//
//   - Classify(spec) → OutputTarget
//     Done once per batch: empty → alongside the source, existing
//     directory → into that directory, anything else → that exact file.
//   - OutputPath(source, target) → string
//     <stem>_compressed.mp4 in the chosen directory, or the target file
//     verbatim.
//   - Claims
//     Records which source owns each destination so the runner can warn
//     about (or, in strict mode, refuse) jobs that would overwrite each
//     other's output.
package naming
