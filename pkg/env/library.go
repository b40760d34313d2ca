// pkg/env/library.go
package env

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// New creates an environment for libDir on goos
func New(libDir, goos string) *Environment {
	return &Environment{LibDir: libDir, GOOS: goos}
}

// Libraries returns the shared libraries in LibDir sorted by file name. A
// missing LibDir yields no libraries.
func (e *Environment) Libraries(fsys afero.Fs) ([]*Library, error) {
	names, err := e.list(fsys)
	if err != nil {
		return nil, err
	}

	ext := SharedLibraryExtension(e.GOOS)
	var libraries []*Library
	for _, name := range names {
		// Check for lib.so, lib.so.10 and lib.so.10.2
		i := strings.Index(name, ext)
		if i <= 0 {
			continue
		}
		rest := name[i+len(ext):]
		if rest != "" && !strings.HasPrefix(rest, ".") {
			continue
		}

		libName := name[:i]
		if e.GOOS != "windows" {
			libName = strings.TrimPrefix(libName, "lib")
		}

		libraries = append(libraries, &Library{
			Name:    libName,
			Path:    filepath.Join(e.LibDir, name),
			Type:    ext,
			Version: strings.TrimPrefix(rest, "."),
		})
	}

	return libraries, nil
}

// FindLibrary returns the library called name, preferring the unversioned
// file. It returns nil when there is none.
func (e *Environment) FindLibrary(fsys afero.Fs, name string) (*Library, error) {
	libs, err := e.Libraries(fsys)
	if err != nil {
		return nil, err
	}

	var found *Library
	for _, lib := range libs {
		if lib.Name != name {
			continue
		}
		if found == nil || lib.Version == "" {
			found = lib
		}
	}
	return found, nil
}

// Headers returns the C headers in LibDir sorted by file name
func (e *Environment) Headers(fsys afero.Fs) ([]string, error) {
	names, err := e.list(fsys)
	if err != nil {
		return nil, err
	}

	var headers []string
	for _, name := range names {
		if strings.HasSuffix(name, ".h") {
			headers = append(headers, filepath.Join(e.LibDir, name))
		}
	}
	return headers, nil
}

// CompilerFlags returns the flags to build against the installed library
func (e *Environment) CompilerFlags() CompilerFlags {
	return CompilerFlags{
		IncludeFlags: []string{"-I" + e.LibDir},
		LibraryFlags: []string{"-L" + e.LibDir},
		LinkFlags:    []string{"-l" + LinkName(e.GOOS)},
	}
}

// Exports returns the shell lines that put LibDir on the loader path
func (e *Environment) Exports() []string {
	name := LoaderPathVar(e.GOOS)
	if e.GOOS == "windows" {
		return []string{fmt.Sprintf(`set %s=%s;%%%s%%`, name, e.LibDir, name)}
	}
	return []string{fmt.Sprintf(`export %s="%s${%s:+:$%s}"`, name, e.LibDir, name, name)}
}

func (e *Environment) list(fsys afero.Fs) ([]string, error) {
	if ok, err := afero.DirExists(fsys, e.LibDir); err != nil {
		return nil, fmt.Errorf("checking %s: %w", e.LibDir, err)
	} else if !ok {
		return nil, nil
	}

	entries, err := afero.ReadDir(fsys, e.LibDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", e.LibDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
