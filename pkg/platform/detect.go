// pkg/platform/detect.go
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned for hosts without a vendor artifact
var ErrUnsupported = errors.New("platform not supported")

// Platform is an (OS, architecture) pair using Go's GOOS/GOARCH names
type Platform struct {
	OS   string // linux, darwin, windows
	Arch string // amd64, 386, arm64
}

// Detect returns the platform of the running process
func Detect() Platform {
	return Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// String returns "os/arch"
func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}

// Classify maps p to its download target
func Classify(p Platform) (*Target, error) {
	for _, t := range targets {
		if t.Platform == p {
			target := t
			return &target, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, p)
}

// Supported lists every platform with a vendor artifact
func Supported() []Platform {
	platforms := make([]Platform, 0, len(targets))
	for _, t := range targets {
		platforms = append(platforms, t.Platform)
	}
	return platforms
}
