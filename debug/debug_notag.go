//go:build !debug

package debug

// Debug controls the verbosity of log and stack output. It is set by
// building with the debug tag.
const Debug = false
