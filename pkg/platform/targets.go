// pkg/platform/targets.go
package platform

import "strings"

// Kind tells the installer what to do with a downloaded artifact
type Kind int

const (
	// KindArchive is unpacked into the library directory
	KindArchive Kind = iota

	// KindInstaller is handed to the OS to execute
	KindInstaller
)

func (k Kind) String() string {
	switch k {
	case KindArchive:
		return "archive"
	case KindInstaller:
		return "installer"
	default:
		return "unknown"
	}
}

// Target is the static download description for one platform
type Target struct {
	Platform Platform
	URL      string // Fixed download location
	FileName string // Name of the file inside the download directory
	Kind     Kind
}

var targets = []Target{
	{Platform{"linux", "amd64"}, URLLinux64, "nrfjprog-linux64.tar", KindArchive},
	{Platform{"darwin", "amd64"}, URLDarwin, "nrfjprog-darwin.tar", KindArchive},
	{Platform{"darwin", "arm64"}, URLDarwin, "nrfjprog-darwin.tar", KindArchive},
	{Platform{"windows", "amd64"}, URLWindows, "nrfjprog-win32.exe", KindInstaller},
	{Platform{"windows", "386"}, URLWindows, "nrfjprog-win32.exe", KindInstaller},
}

// WithURL returns a copy of t downloading from url. The file name and kind
// follow the extension of url.
func (t Target) WithURL(url string) Target {
	if url == "" || url == t.URL {
		return t
	}
	t.URL = url
	if ext := archiveExt(url); ext != "" {
		t.FileName = strings.TrimSuffix(t.FileName, archiveExt(t.FileName)) + ext
		t.Kind = KindArchive
		if ext == ".exe" {
			t.Kind = KindInstaller
		}
	}
	return t
}

// HeaderFallbackPath is the vendor header whose presence counts as an
// existing installation when the library cannot be queried. Only the Windows
// installer has such a location.
func HeaderFallbackPath(os string) string {
	if os == "windows" {
		return HeaderPathWindows
	}
	return ""
}
