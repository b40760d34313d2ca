package installer

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	return string(data)
}

func TestExtractFormats(t *testing.T) {
	for _, format := range []string{"", "gz", "xz", "zst"} {
		name := "vendor.tar"
		if format != "" {
			name += "." + format
		}
		t.Run(name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "/dl/"+name, compress(t, format, vendorArchive(t)), 0644))

			stats, err := Extract(fsys, "/dl/"+name, "/lib", ExtractOptions{StripComponents: 1, Include: DefaultInclude})
			require.NoError(t, err)
			assert.Equal(t, 4, stats.Files)
			assert.Equal(t, 2, stats.Skipped)

			assert.Equal(t, "ELF-nrfjprog", readFile(t, fsys, "/lib/libnrfjprogdll.so"))
			assert.Equal(t, "ELF-sub", readFile(t, fsys, "/lib/libjlinkarm_nrf52_nrfjprogdll.so.10"))
			assert.Equal(t, "#pragma once", readFile(t, fsys, "/lib/nrfjprogdll.h"))

			exists, err := afero.Exists(fsys, "/lib/nrfjprog")
			require.NoError(t, err)
			assert.False(t, exists)
			exists, err = afero.Exists(fsys, "/lib/readme.txt")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestExtractNoFilterNoStrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a.tar", vendorArchive(t), 0644))

	stats, err := Extract(fsys, "/a.tar", "/out", ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Files)
	assert.Equal(t, "read me", readFile(t, fsys, "/out/nrfjprog/readme.txt"))
}

func TestExtractStripDropsShallowEntries(t *testing.T) {
	fsys := afero.NewMemMapFs()
	data := buildTar(t, []tarEntry{
		{name: "top.h", body: "top"},
		{name: "a/b/deep.h", body: "deep"},
	})
	require.NoError(t, afero.WriteFile(fsys, "/a.tar", data, 0644))

	stats, err := Extract(fsys, "/a.tar", "/out", ExtractOptions{StripComponents: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, "deep", readFile(t, fsys, "/out/b/deep.h"))
}

func TestExtractKeepsExistingFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/out/nrfjprogdll.h", []byte("local copy"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/a.tar", vendorArchive(t), 0644))

	stats, err := Extract(fsys, "/a.tar", "/out", ExtractOptions{StripComponents: 1, Include: DefaultInclude})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Files)
	assert.Equal(t, "local copy", readFile(t, fsys, "/out/nrfjprogdll.h"))
}

func TestExtractCustomInclude(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a.tar", vendorArchive(t), 0644))

	stats, err := Extract(fsys, "/a.tar", "/out", ExtractOptions{StripComponents: 1, Include: regexp.MustCompile(`\.txt$`)})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, "read me", readFile(t, fsys, "/out/readme.txt"))
}

func TestExtractRejectsTraversal(t *testing.T) {
	fsys := afero.NewMemMapFs()
	data := buildTar(t, []tarEntry{{name: "../evil.h", body: "x"}})
	require.NoError(t, afero.WriteFile(fsys, "/a.tar", data, 0644))

	_, err := Extract(fsys, "/a.tar", "/out", ExtractOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes")
}

func TestExtractSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("creating symlinks needs extra privileges on windows")
	}
	dir := t.TempDir()
	fsys := afero.NewOsFs()

	data := buildTar(t, []tarEntry{
		{name: "pkg/libnrfjprogdll.so.10", body: "ELF"},
		{name: "pkg/libnrfjprogdll.so", linkname: "libnrfjprogdll.so.10"},
	})
	archive := filepath.Join(dir, "a.tar")
	require.NoError(t, os.WriteFile(archive, data, 0644))

	out := filepath.Join(dir, "lib")
	stats, err := Extract(fsys, archive, out, ExtractOptions{StripComponents: 1, Include: DefaultInclude})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)

	if stats.Symlinks == 0 {
		t.Skip("symlinks not supported here")
	}
	target, err := os.Readlink(filepath.Join(out, "libnrfjprogdll.so"))
	require.NoError(t, err)
	assert.Equal(t, "libnrfjprogdll.so.10", target)
}

func TestExtractRejectsEscapingSymlink(t *testing.T) {
	dir := t.TempDir()
	data := buildTar(t, []tarEntry{{name: "pkg/libx.so", linkname: "../../../etc/passwd"}})
	archive := filepath.Join(dir, "a.tar")
	require.NoError(t, os.WriteFile(archive, data, 0644))

	_, err := Extract(afero.NewOsFs(), archive, filepath.Join(dir, "lib"), ExtractOptions{StripComponents: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points outside")
}

func TestExtractSymlinkOnMemFsIsSkipped(t *testing.T) {
	fsys := afero.NewMemMapFs()
	data := buildTar(t, []tarEntry{{name: "pkg/libx.so", linkname: "libx.so.1"}})
	require.NoError(t, afero.WriteFile(fsys, "/a.tar", data, 0644))

	stats, err := Extract(fsys, "/a.tar", "/out", ExtractOptions{StripComponents: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Symlinks)
	assert.Equal(t, 1, stats.Skipped)
}

func TestExtractErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := Extract(fsys, "/missing.tar", "/out", ExtractOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening archive")

	require.NoError(t, afero.WriteFile(fsys, "/bad.tar.gz", []byte("not gzip"), 0644))
	_, err = Extract(fsys, "/bad.tar.gz", "/out", ExtractOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")

	require.NoError(t, afero.WriteFile(fsys, "/bad.tar", []byte("this is not a tar archive at all, just some text that is long enough"), 0644))
	_, err = Extract(fsys, "/bad.tar", "/out", ExtractOptions{})
	require.Error(t, err)
}

func TestStripComponents(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"a/b/c.h", 0, "a/b/c.h"},
		{"a/b/c.h", 1, "b/c.h"},
		{"a/b/c.h", 2, "c.h"},
		{"a/b/c.h", 3, ""},
		{"./a/b.h", 1, "b.h"},
		{"/abs/x.h", 1, "x.h"},
		{"a/", 1, ""},
		{".", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripComponents(tt.name, tt.n), "%s strip %d", tt.name, tt.n)
	}
}
