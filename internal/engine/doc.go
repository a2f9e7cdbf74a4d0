package engine

// Package engine wraps the external transcoding engine (ffmpeg/ffprobe)
// behind a small contract: load once, write input bytes into a private
// scratch filesystem, execute an argument vector, read the output back, and
// observe fractional progress while executing.
