//go:build windows

// pkg/jprog/load_windows.go
package jprog

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
)

const loaderBuilt = true

func load(path string) (*Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, errormsg.New(errormsg.CouldNotLoadDLL, "loading "+path, err.Error(), errormsg.SUCCESS)
	}

	proc, err := dll.FindProc(symbolDLLVersion)
	if err != nil {
		dll.Release()
		return nil, errormsg.New(errormsg.CouldNotCallFunction, "resolving "+symbolDLLVersion, err.Error(), errormsg.SUCCESS)
	}

	return &Library{
		Path: path,
		version: func(major, minor, revision *uint32) errormsg.LowLevelError {
			r1, _, _ := proc.Call(
				uintptr(unsafe.Pointer(major)),
				uintptr(unsafe.Pointer(minor)),
				uintptr(unsafe.Pointer(revision)),
			)
			return errormsg.LowLevelError(int32(r1))
		},
		release: dll.Release,
	}, nil
}
