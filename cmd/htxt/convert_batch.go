package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-htxt"
)

// File permission constants.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

// Sentinel errors for batch operations.
var (
	ErrReadSource      = errors.New("failed to read source file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrConverterInit   = errors.New("failed to initialize converter")
)

// CLIConverter is the part of *htxt.Converter the batch needs.
type CLIConverter interface {
	Convert(ctx context.Context, input htxt.Input) (*htxt.ConvertResult, error)
}

var _ CLIConverter = (*htxt.Converter)(nil)

// Pool hands converters to batch workers.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// ConversionResult is the outcome of one file.
type ConversionResult struct {
	InputPath   string
	OutputPath  string
	PDFPath     string
	Bytes       int
	Diagnostics []htxt.Diagnostic
	Err         error
	Duration    time.Duration
}

// convertBatch converts files on up to pool.Size() workers. Results keep
// the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	workers := min(pool.Size(), len(files))
	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %w", ErrConverterInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	wg.Wait()
	return results
}

// convertFile reads, converts, and writes one source.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) (result ConversionResult) {
	start := time.Now()
	result = ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	defer func() { result.Duration = time.Since(start) }()

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadSource, err)
		return result
	}
	src, err := htxt.DecodeSource(data)
	if err != nil {
		result.Err = err
		return result
	}

	res, err := conv.Convert(ctx, htxt.Input{Source: src, PDF: params.pdf})
	if err != nil {
		result.Err = err
		return result
	}
	result.Diagnostics = res.Diagnostics

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
		return result
	}
	// #nosec G306 -- HTML output is meant to be readable
	if err := os.WriteFile(f.OutputPath, res.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteOutput, err)
		return result
	}
	result.Bytes = len(res.HTML)

	if params.pdf {
		result.PDFPath = pdfOutputPath(f.OutputPath)
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(result.PDFPath, res.PDF, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %w", ErrWriteOutput, err)
			return result
		}
		result.Bytes += len(res.PDF)
	}
	return result
}

// batchError reports how many files failed and wraps each failure so
// exit codes and hints can still match them.
type batchError struct {
	failed int
	errs   []error
}

func (e *batchError) Error() string {
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() []error { return e.errs }

// printResults reports each file and returns a *batchError if any failed.
func printResults(results []ConversionResult, params *conversionParams, env *Environment) error {
	var errs []error
	var total uint64
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}
		total += uint64(r.Bytes)

		if !params.quiet {
			for _, d := range r.Diagnostics {
				fmt.Fprintf(env.Stderr, "warning: %s: %s\n", r.InputPath, d)
			}
		}

		switch {
		case params.quiet:
		case params.verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.InputPath, outputs(r), humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Wrote %s\n", outputs(r))
		}
	}

	if !params.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", len(results)-len(errs), len(errs))
		if params.verbose {
			fmt.Fprintf(env.Stdout, " (%s written)", humanize.Bytes(total))
		}
		fmt.Fprintln(env.Stdout)
	}

	if len(errs) > 0 {
		return &batchError{failed: len(errs), errs: errs}
	}
	return nil
}

func outputs(r ConversionResult) string {
	if r.PDFPath == "" {
		return r.OutputPath
	}
	return strings.Join([]string{r.OutputPath, r.PDFPath}, ", ")
}
