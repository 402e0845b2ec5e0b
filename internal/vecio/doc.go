// Package vecio reads and writes coefficient vectors and regression problems
// for the command-line tools.
//
// Two encodings are supported, selected by file extension:
//
//   - JSON: a flat array of numbers (default).
//   - Binary (".bin"): a small header followed by little-endian elements.
//
// Either encoding may be wrapped in a compressed stream by appending ".zst"
// (zstd) or ".lz4" (LZ4 frame) to the path.
package vecio
