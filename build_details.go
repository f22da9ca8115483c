package oastype

import "runtime"

var (
	// version is set via ldflags during build
	// For development builds, this will show "dev"
	version = "dev"
	// commit is the git commit the binary was built from
	commit = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the compiled commit hash or 'unknown' if run from source
func Commit() string {
	return commit
}

// GoVersion returns the Go runtime version the binary was built with
func GoVersion() string {
	return runtime.Version()
}
