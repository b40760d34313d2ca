// pkg/installer/errors.go
package installer

import (
	"errors"
	"fmt"

	"github.com/nrfjprog-go/nrfjprog/pkg/platform"
)

var (
	// ErrPlatformNotSupported indicates the host has no vendor artifact
	ErrPlatformNotSupported = platform.ErrUnsupported

	// ErrVersionProbe indicates the installed library could not be queried
	ErrVersionProbe = errors.New("version probe failed")

	// ErrDownloadFailed indicates the artifact could not be fetched
	ErrDownloadFailed = errors.New("download failed")

	// ErrInstallFailed indicates extraction or launching the installer failed
	ErrInstallFailed = errors.New("install failed")

	// ErrCleanupFailed indicates the downloaded artifact could not be removed
	ErrCleanupFailed = errors.New("cleanup failed")
)

// StepError wraps the failure of one installer step
type StepError struct {
	Step   string // detect, probe, download, install, cleanup
	Target string // Platform or path the step worked on
	Kind   error  // One of the sentinel errors above
	Err    error  // Underlying error
}

func (e *StepError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Step, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
