// pkg/installer/extract.go
package installer

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"
)

// DefaultInclude matches headers and shared libraries
var DefaultInclude = regexp.MustCompile(`\.(h|dylib|so(\.[0-9]+)*)$`)

// ExtractOptions configures archive extraction
type ExtractOptions struct {
	StripComponents int            // Leading path components to drop
	Include         *regexp.Regexp // Entries to keep, matched on the archive path; nil keeps all
	Logger          *log.Logger    // Optional
}

// ExtractStats counts what Extract did
type ExtractStats struct {
	Files    int
	Symlinks int
	Skipped  int // Filtered out, emptied by stripping, or already present
}

// Extract unpacks the tar archive at src (optionally gzip, xz or zstd
// compressed, chosen by extension) into dest. Files already present in dest
// are never overwritten. Entries that would land outside dest are an error.
func Extract(fsys afero.Fs, src, dest string, opts ExtractOptions) (ExtractStats, error) {
	var stats ExtractStats

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	f, err := fsys.Open(src)
	if err != nil {
		return stats, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	r, err := decompressor(src, f)
	if err != nil {
		return stats, err
	}
	defer r.Close()

	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading tar entry: %w", err)
		}

		if header.Typeflag != tar.TypeReg && header.Typeflag != tar.TypeSymlink {
			continue
		}

		if opts.Include != nil && !opts.Include.MatchString(header.Name) {
			stats.Skipped++
			continue
		}

		name := stripComponents(header.Name, opts.StripComponents)
		if name == "" {
			stats.Skipped++
			continue
		}

		targetPath, err := securePath(dest, name)
		if err != nil {
			return stats, err
		}

		if _, err := fsys.Stat(targetPath); err == nil {
			logger.Printf("  keeping existing %s", name)
			stats.Skipped++
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return stats, fmt.Errorf("checking %s: %w", targetPath, err)
		}

		if err := fsys.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return stats, fmt.Errorf("creating parent directory: %w", err)
		}

		switch header.Typeflag {
		case tar.TypeSymlink:
			linker, ok := fsys.(afero.Linker)
			if !ok {
				logger.Printf("  skipping symlink %s, filesystem has no links", name)
				stats.Skipped++
				continue
			}
			if _, err := securePath(dest, path.Join(path.Dir(name), header.Linkname)); err != nil || path.IsAbs(header.Linkname) {
				return stats, fmt.Errorf("symlink %s points outside %s", name, dest)
			}
			if err := linker.SymlinkIfPossible(header.Linkname, targetPath); err != nil {
				return stats, fmt.Errorf("creating symlink %s -> %s: %w", targetPath, header.Linkname, err)
			}
			stats.Symlinks++
			logger.Printf("  %s -> %s", name, header.Linkname)

		case tar.TypeReg:
			if err := writeFile(fsys, targetPath, tr, header); err != nil {
				return stats, err
			}
			stats.Files++
			logger.Printf("  %s (%d bytes)", name, header.Size)
		}
	}

	return stats, nil
}

func writeFile(fsys afero.Fs, targetPath string, r io.Reader, header *tar.Header) error {
	out, err := fsys.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, os.FileMode(header.Mode).Perm()|0200)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", targetPath, err)
	}

	written, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing file %s: %w", targetPath, err)
	}

	if written != header.Size {
		return fmt.Errorf("file size mismatch for %s: expected %d, got %d", targetPath, header.Size, written)
	}
	return nil
}

// decompressor picks a decoder from the archive file name
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return gzr, nil

	case strings.HasSuffix(lower, ".tar.xz"), strings.HasSuffix(lower, ".txz"):
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return io.NopCloser(xzr), nil

	case strings.HasSuffix(lower, ".tar.zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return zr.IOReadCloser(), nil

	default:
		return io.NopCloser(r), nil
	}
}

// stripComponents drops the first n slash-separated elements of name
func stripComponents(name string, n int) string {
	name = strings.TrimLeft(path.Clean(name), "/")
	if name == "" || name == "." {
		return ""
	}
	parts := strings.Split(name, "/")
	if n >= len(parts) {
		return ""
	}
	return strings.Join(parts[n:], "/")
}

// securePath joins name onto dest, refusing anything that escapes dest
func securePath(dest, name string) (string, error) {
	clean := path.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", fmt.Errorf("archive entry %q escapes %s", name, dest)
	}
	return filepath.Join(dest, filepath.FromSlash(clean)), nil
}
