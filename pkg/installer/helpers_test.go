package installer

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/nrfjprog-go/nrfjprog/pkg/jprog"
)

type tarEntry struct {
	name     string
	body     string
	linkname string
	dir      bool
}

func buildTar(t *testing.T, entries []tarEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: 0644, Size: int64(len(e.body)), Typeflag: tar.TypeReg}
		switch {
		case e.dir:
			hdr.Typeflag, hdr.Mode, hdr.Size = tar.TypeDir, 0755, 0
		case e.linkname != "":
			hdr.Typeflag, hdr.Linkname, hdr.Size = tar.TypeSymlink, e.linkname, 0
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if hdr.Typeflag == tar.TypeReg {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func compress(t *testing.T, format string, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	switch format {
	case "gz":
		w := gzip.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case "xz":
		w, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case "zst":
		w, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		return data
	}
	return buf.Bytes()
}

func vendorArchive(t *testing.T) []byte {
	return buildTar(t, []tarEntry{
		{name: "nrfjprog/", dir: true},
		{name: "nrfjprog/libnrfjprogdll.so", body: "ELF-nrfjprog"},
		{name: "nrfjprog/libjlinkarm_nrf52_nrfjprogdll.so.10", body: "ELF-sub"},
		{name: "nrfjprog/nrfjprogdll.h", body: "#pragma once"},
		{name: "nrfjprog/DllCommonDefinitions.h", body: "#pragma once"},
		{name: "nrfjprog/nrfjprog", body: "#!/bin/sh"},
		{name: "nrfjprog/readme.txt", body: "read me"},
	})
}

type fakeProber struct {
	version jprog.Version
	err     error
	calls   int
}

func (p *fakeProber) InstalledVersion() (jprog.Version, error) {
	p.calls++
	return p.version, p.err
}

type fakeLauncher struct {
	err      error
	launched []string
}

func (l *fakeLauncher) Launch(ctx context.Context, path string) error {
	l.launched = append(l.launched, path)
	return l.err
}

// removeFailFs refuses to remove anything
type removeFailFs struct {
	afero.Fs
}

func (removeFailFs) Remove(name string) error {
	return errors.New("file is busy")
}
