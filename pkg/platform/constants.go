// pkg/platform/constants.go
package platform

const (
	downloadBase = "https://www.nordicsemi.com/-/media/Software-and-other-downloads/Desktop-software/nRF-command-line-tools/sw/Versions-10-x-x/10-12-1/"

	// URLLinux64 is the x86_64 Linux archive
	URLLinux64 = downloadBase + "nRFCommandLineTools10121Linuxamd64.tar"

	// URLDarwin is the macOS archive
	URLDarwin = downloadBase + "nRFCommandLineTools10121Darwin.tar"

	// URLWindows is the Windows installer executable
	URLWindows = downloadBase + "nRFCommandLineTools10121Installer.exe"

	// HeaderPathWindows is where the Windows installer puts nrfjprogdll.h
	HeaderPathWindows = `C:\Program Files\Nordic Semiconductor\nrf-command-line-tools\include\nrfjprogdll.h`
)
