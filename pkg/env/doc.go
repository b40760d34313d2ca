/*
Package env describes an installed nrfjprog library directory.

It handles:
  - Finding the shared libraries and headers an install left behind
  - Generating compiler and linker flags for building against them
  - Producing the loader path exports needed at run time

Basic Usage:

	e := env.New("/home/me/.nrfjprog/lib", runtime.GOOS)

	libs, err := e.Libraries(afero.NewOsFs())
	for _, lib := range libs {
		fmt.Printf("%s %s\n", lib.Name, lib.Path)
	}

	flags := e.CompilerFlags()
	fmt.Println(flags.IncludeFlags) // [-I/home/me/.nrfjprog/lib]

	for _, line := range e.Exports() {
		fmt.Println(line) // export LD_LIBRARY_PATH=...
	}
*/
package env
