// pkg/jprog/jprog.go

// Package jprog loads the vendor nrfjprog library and queries it.
//
// Only the calls needed to identify an installation are bound here; failures
// are reported as *errormsg.Error values.
package jprog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
)

// Version is the (major, minor, revision) triple reported by the library.
type Version struct {
	Major    uint32 `yaml:"major" json:"major"`
	Minor    uint32 `yaml:"minor" json:"minor"`
	Revision uint32 `yaml:"revision" json:"revision"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Library is a loaded nrfjprog shared library.
type Library struct {
	Path string

	version func(major, minor, revision *uint32) errormsg.LowLevelError
	release func() error
}

// LibraryName returns the library file name for goos.
func LibraryName(goos string) string {
	switch goos {
	case "windows":
		return LibraryNameWindows
	case "darwin":
		return LibraryNameDarwin
	default:
		return LibraryNameUnix
	}
}

// SearchPaths lists the candidate library paths for dirs followed by the
// well-known install locations of the current OS. The bare library name is
// last so the system loader gets a chance too.
func SearchPaths(dirs ...string) []string {
	name := LibraryName(runtime.GOOS)

	all := make([]string, 0, len(dirs)+len(systemDirs[runtime.GOOS]))
	all = append(all, dirs...)
	all = append(all, systemDirs[runtime.GOOS]...)

	var paths []string
	for _, dir := range all {
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return append(paths, name)
}

// Open loads the first library found in dirs or the system locations.
func Open(dirs ...string) (*Library, error) {
	paths := SearchPaths(dirs...)
	last := paths[len(paths)-1]

	// A file that exists but fails to load is reported in preference to the
	// bare-name attempt.
	var foundErr, lastErr error
	for _, path := range paths {
		if path != last {
			if _, err := os.Stat(path); err != nil {
				continue
			}
		}
		lib, err := load(path)
		if err == nil {
			return lib, nil
		}
		if path != last && foundErr == nil {
			foundErr = err
		}
		lastErr = err
	}

	if foundErr != nil {
		return nil, foundErr
	}
	if lastErr == nil {
		lastErr = errormsg.New(errormsg.CouldNotFindJprogDLL, "searching for "+LibraryName(runtime.GOOS), "", errormsg.SUCCESS)
	}
	return nil, lastErr
}

// OpenFile loads the library at an explicit path.
func OpenFile(path string) (*Library, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errormsg.New(errormsg.CouldNotFindJprogDLL, "opening "+path, err.Error(), errormsg.SUCCESS)
	}
	return load(path)
}

// Version asks the library for its own version.
func (l *Library) Version() (Version, error) {
	var v Version
	if rc := l.version(&v.Major, &v.Minor, &v.Revision); rc != errormsg.SUCCESS {
		return Version{}, errormsg.New(errormsg.CouldNotCallFunction, "getting library version", "", rc)
	}
	return v, nil
}

// Close unloads the library.
func (l *Library) Close() error {
	if l.release == nil {
		return nil
	}
	release := l.release
	l.release = nil
	if err := release(); err != nil {
		return fmt.Errorf("unloading %s: %w", l.Path, err)
	}
	return nil
}

// Prober reports the version of the installed library.
type Prober struct {
	Dirs []string
}

// InstalledVersion opens the library, reads its version and unloads it.
// A panic raised while calling into the library is returned as an error.
func (p *Prober) InstalledVersion() (v Version, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errormsg.New(errormsg.CouldNotCallFunction, "getting library version", fmt.Sprint(r), errormsg.SUCCESS)
		}
	}()

	lib, err := Open(p.Dirs...)
	if err != nil {
		return Version{}, err
	}
	defer lib.Close()

	return lib.Version()
}
