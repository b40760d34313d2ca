//go:build !windows && !((darwin || linux) && (amd64 || arm64))

// pkg/jprog/load_other.go
package jprog

import "github.com/nrfjprog-go/nrfjprog/pkg/errormsg"

const loaderBuilt = false

func load(path string) (*Library, error) {
	return nil, errormsg.New(errormsg.CouldNotLoadDLL, "loading "+path, "dynamic loading is not supported on this platform", errormsg.SUCCESS)
}
