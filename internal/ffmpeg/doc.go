// Package ffmpeg builds and executes ffmpeg commands.
//
//   - Build(source, dest, params) → []string
//     -y, decode path, input, libx264 or h264_nvenc video, aac or -an, dest.
//     Rejects invalid parameters before anything is launched.
//   - (*Executor).Run(ctx, args, sink) → Result
//     stdout and stderr share one pipe; lines (\n, \r\n or \r terminated)
//     are forwarded to sink as they arrive, then the exit status is captured.
//   - HasEncoder(ctx, binary, name) → bool
//     Capability probe over `ffmpeg -encoders`; failures mean "absent".
package ffmpeg
