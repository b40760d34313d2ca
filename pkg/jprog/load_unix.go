//go:build (darwin || linux) && (amd64 || arm64)

// pkg/jprog/load_unix.go
package jprog

import (
	"github.com/ebitengine/purego"

	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
)

const loaderBuilt = true

func load(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errormsg.New(errormsg.CouldNotLoadDLL, "loading "+path, err.Error(), errormsg.SUCCESS)
	}

	sym, err := purego.Dlsym(handle, symbolDLLVersion)
	if err != nil {
		purego.Dlclose(handle)
		return nil, errormsg.New(errormsg.CouldNotCallFunction, "resolving "+symbolDLLVersion, err.Error(), errormsg.SUCCESS)
	}

	var dllVersion func(major, minor, revision *uint32) int32
	purego.RegisterFunc(&dllVersion, sym)

	return &Library{
		Path: path,
		version: func(major, minor, revision *uint32) errormsg.LowLevelError {
			return errormsg.LowLevelError(dllVersion(major, minor, revision))
		},
		release: func() error {
			return purego.Dlclose(handle)
		},
	}, nil
}
