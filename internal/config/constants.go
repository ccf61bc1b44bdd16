// Package config holds the handful of package-level constants and
// optionally-loaded driver settings the rest of the module reads.
package config

// Version is the current compiler version.
// Set at build time via -ldflags, or left at this default for local builds.
var Version = "0.1.0"

const SourceFileExt = ".mini"

// TrimSourceExt removes the recognized source extension from a filename.
// Returns the original string if it doesn't end in SourceFileExt.
func TrimSourceExt(name string) string {
	if len(name) >= len(SourceFileExt) && name[len(name)-len(SourceFileExt):] == SourceFileExt {
		return name[:len(name)-len(SourceFileExt)]
	}
	return name
}

// HasSourceExt reports whether path ends with the recognized source
// extension.
func HasSourceExt(path string) bool {
	return len(path) >= len(SourceFileExt) && path[len(path)-len(SourceFileExt):] == SourceFileExt
}

// IsTestMode is set once at startup when MINILANGC_TEST_MODE=1 is present
// in the environment. cmd/minilangc reads it to produce deterministic,
// diffable output for golden-file tests: the per-run UUID line is
// suppressed and diagnostics no longer force a non-zero exit code.
var IsTestMode = false
