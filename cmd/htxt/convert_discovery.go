package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htxt"
	"github.com/alnah/go-htxt/internal/fileutil"
)

// sourceExt is the extension picked up when walking a directory.
const sourceExt = ".htxt"

var ErrInvalidWorkerCount = errors.New("invalid worker count")

// FileToConvert pairs a source with its HTML destination.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the sources under inputPath. A file is taken as is,
// whatever its extension; a directory is walked for .htxt files.
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []FileToConvert{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || filepath.Ext(path) != sourceExt {
			return nil
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: resolveOutputPath(path, output, inputPath)})
		return nil
	})
	return files, err
}

// resolveOutputPath maps a source to its .html path. With no output the
// file lands next to its source. An output ending in .html is used as is.
// Otherwise output is a directory mirroring the layout under baseDir.
func resolveOutputPath(inputPath, output, baseDir string) string {
	name := fileutil.ReplaceExt(filepath.Base(inputPath), ".html")

	switch {
	case output == "":
		return fileutil.ReplaceExt(inputPath, ".html")
	case strings.HasSuffix(output, ".html"):
		return output
	case baseDir != "":
		if rel, err := filepath.Rel(baseDir, inputPath); err == nil {
			return filepath.Join(output, filepath.Dir(rel), name)
		}
	}
	return filepath.Join(output, name)
}

// pdfOutputPath returns the PDF written alongside an HTML output.
func pdfOutputPath(htmlPath string) string {
	return fileutil.ReplaceExt(htmlPath, ".pdf")
}

func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > htxt.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, htxt.MaxPoolSize)
	}
	return nil
}
