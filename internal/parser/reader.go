package parser

import (
	"compress/bzip2"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// logSuffixes are the file names picked up when walking a directory.
var logSuffixes = []string{".txt", ".txt.gz", ".txt.zst", ".txt.bz2"}

// IsLogFile reports whether name looks like a hand-history file.
func IsLogFile(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range logSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// OpenLog opens a hand-history file, decompressing .gz, .zst and .bz2
// archives transparently. "-" reads standard input.
func OpenLog(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &stackedReader{Reader: dec, closers: []func() error{func() error { dec.Close(); return nil }, f.Close}}, nil
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &stackedReader{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case strings.HasSuffix(lower, ".bz2"):
		return &stackedReader{Reader: bzip2.NewReader(f), closers: []func() error{f.Close}}, nil
	}
	return f, nil
}

// stackedReader closes a decompressor and the file beneath it.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (r *stackedReader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ExpandPaths resolves the import arguments: directories are walked for
// hand-history files, files and "-" are kept as given.
func ExpandPaths(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if arg == "-" {
			out = append(out, arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsLogFile(d.Name()) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// ReadBlocks reads every hand block from the log at path.
func ReadBlocks(path string) ([]string, error) {
	rc, err := OpenLog(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var blocks []string
	err = ScanBlocks(rc, func(block string) error {
		blocks = append(blocks, block)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return blocks, nil
}
