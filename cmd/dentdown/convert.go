package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	dentdown "github.com/alnah/go-dentdown"
	"github.com/alnah/go-dentdown/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .dd or .dentdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// fileToConvert represents a single file to process.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath string
	err       error
	duration  time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, out, errw io.Writer) error {
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, flags.workers)
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over config values.
	mergeFlags(flags, cfg)

	svc := dentdown.New()

	// Stdin mode: convert one document to stdout (or --output).
	if len(positional) == 1 && positional[0] == "-" {
		return convertStream(ctx, svc, os.Stdin, out, flags.output, cfg)
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, flags.output, cfg)
	if err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Workers)
	if flags.verbose {
		fmt.Fprintf(errw, "converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, svc, files, cfg, workers)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(errw, "error: %s: %v\n", r.inputPath, r.err)
			continue
		}
		if !flags.quiet {
			fmt.Fprintf(out, "converted %s (%s)\n", r.inputPath, r.duration.Round(time.Millisecond))
		}
	}
	if failed > 0 {
		// Surface the first failure so the exit code reflects its class.
		for _, r := range results {
			if r.err != nil {
				return fmt.Errorf("%d of %d conversions failed: %w", failed, len(results), r.err)
			}
		}
	}
	return nil
}

// mergeFlags overlays CLI flags onto the loaded config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Document.Style = flags.style
	}
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.standalone {
		cfg.Document.Standalone = true
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// convertStream reads one document from r and writes HTML to outputPath, or
// to w when no output path is given.
func convertStream(ctx context.Context, svc *dentdown.Service, r io.Reader, w io.Writer, outputPath string, cfg *config.Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	html, err := svc.Convert(ctx, inputFor(string(data), "", cfg))
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = io.WriteString(w, html)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resolveInputPath picks the input from positional args or the config default.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// discoverFiles expands the input path into concrete conversion jobs. A file
// converts to one job; a directory is walked for dentdown sources.
func discoverFiles(inputPath, output string, cfg *config.Config) ([]fileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if !info.IsDir() {
		if !hasDentdownExtension(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		return []fileToConvert{{
			inputPath:  inputPath,
			outputPath: resolveOutputPath(inputPath, output, cfg),
		}}, nil
	}

	var files []fileToConvert
	walkErr := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasDentdownExtension(path) {
			return nil
		}
		files = append(files, fileToConvert{
			inputPath:  path,
			outputPath: resolveOutputPath(path, output, cfg),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("discovering files: %w", walkErr)
	}
	return files, nil
}

// resolveOutputPath maps a source path to its .html destination.
// Priority: explicit --output dir > config output dir > alongside the source.
func resolveOutputPath(inputPath, output string, cfg *config.Config) string {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".html"

	outputDir := output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	return filepath.Join(outputDir, name)
}

// hasDentdownExtension reports whether path names a dentdown source file.
func hasDentdownExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == dentdown.Extension || ext == dentdown.ExtensionAlt
}

// convertBatch converts files in parallel with a bounded number of workers.
// The service is shared: it is read-only configuration, and every Convert
// call runs its own session.
func convertBatch(ctx context.Context, svc *dentdown.Service, files []fileToConvert, cfg *config.Config, workers int) []conversionResult {
	results := make([]conversionResult, len(files))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, f := range files {
		wg.Add(1)
		go func(i int, f fileToConvert) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			results[i] = conversionResult{
				inputPath: f.inputPath,
				err:       convertFile(ctx, svc, f, cfg),
				duration:  time.Since(start),
			}
		}(i, f)
	}

	wg.Wait()
	return results
}

// convertFile converts one source file to HTML on disk.
func convertFile(ctx context.Context, svc *dentdown.Service, f fileToConvert, cfg *config.Config) error {
	data, err := os.ReadFile(f.inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	title := cfg.Document.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(f.inputPath), filepath.Ext(f.inputPath))
	}

	html, err := svc.Convert(ctx, inputFor(string(data), title, cfg))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.outputPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.WriteFile(f.outputPath, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// inputFor builds the library Input from config and content.
func inputFor(markup, title string, cfg *config.Config) dentdown.Input {
	if title == "" {
		title = cfg.Document.Title
	}
	return dentdown.Input{
		Markup:     markup,
		Title:      title,
		Style:      cfg.Document.Style,
		Standalone: cfg.Document.Standalone,
	}
}
