// pkg/jprog/constants.go
package jprog

const (
	// LibraryNameUnix is the shared object shipped in the Linux archives
	LibraryNameUnix = "libnrfjprogdll.so"

	// LibraryNameDarwin is the shared object shipped in the macOS archives
	LibraryNameDarwin = "libnrfjprogdll.dylib"

	// LibraryNameWindows is the DLL placed by the Windows installer
	LibraryNameWindows = "nrfjprog.dll"

	symbolDLLVersion = "NRFJPROG_dll_version"
)

// CanLoad reports whether the library can be loaded in-process on goos/goarch.
// It mirrors the build constraints of the load_*.go files.
func CanLoad(goos, goarch string) bool {
	switch goos {
	case "windows":
		return true
	case "linux", "darwin":
		return goarch == "amd64" || goarch == "arm64"
	default:
		return false
	}
}

// systemDirs are searched after the caller's directories, per GOOS.
var systemDirs = map[string][]string{
	"linux":   {"/opt/nrf-command-line-tools/lib", "/usr/local/lib"},
	"darwin":  {"/usr/local/lib", "/opt/homebrew/lib"},
	"windows": {`C:\Program Files\Nordic Semiconductor\nrf-command-line-tools\bin`},
}
