// pkg/env/constants.go
package env

// LinkName is the library the binding links against on goos
func LinkName(goos string) string {
	if goos == "windows" {
		return "nrfjprog"
	}
	return "nrfjprogdll"
}

// SharedLibraryExtension returns the shared library extension for goos
func SharedLibraryExtension(goos string) string {
	switch goos {
	case "darwin":
		return ".dylib"
	case "windows":
		return ".dll"
	default: // linux, etc.
		return ".so"
	}
}

// LoaderPathVar is the variable the dynamic loader of goos searches
func LoaderPathVar(goos string) string {
	switch goos {
	case "darwin":
		return "DYLD_LIBRARY_PATH"
	case "windows":
		return "PATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}
