// pkg/env/types.go
package env

// Library represents a found library file
type Library struct {
	Name    string // Library name without prefix and extension (e.g., "nrfjprogdll")
	Path    string // Path to the library file
	Type    string // Extension: ".so", ".dylib", ".dll"
	Version string // Version suffix if present (e.g., "10" from libfoo.so.10)
}

// Environment is an installed library directory on one OS
type Environment struct {
	LibDir string // Directory the vendor archive was unpacked into
	GOOS   string // linux, darwin, windows
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}
