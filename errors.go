// errors.go
package nrfjprog

import (
	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
	"github.com/nrfjprog-go/nrfjprog/pkg/installer"
)

var (
	// ErrPlatformNotSupported indicates the host has no vendor artifact
	ErrPlatformNotSupported = installer.ErrPlatformNotSupported

	// ErrVersionProbe indicates the installed library could not be queried
	ErrVersionProbe = installer.ErrVersionProbe

	// ErrDownloadFailed indicates the artifact could not be fetched
	ErrDownloadFailed = installer.ErrDownloadFailed

	// ErrInstallFailed indicates extraction or launching the installer failed
	ErrInstallFailed = installer.ErrInstallFailed

	// ErrCleanupFailed indicates the downloaded artifact could not be removed
	ErrCleanupFailed = installer.ErrCleanupFailed
)

// Error wraps the failure of one installer step. It matches both its
// sentinel and the underlying error with errors.Is.
type Error = installer.StepError

// BindingError is the structured error reported by library calls
type BindingError = errormsg.Error

// NewBindingError formats a binding failure. It returns nil for Success.
func NewBindingError(code ErrorCode, operation, log string, lowLevel LowLevelError) error {
	return errormsg.New(code, operation, log, lowLevel)
}
