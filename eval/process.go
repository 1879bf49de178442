package eval

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// FileResult is the outcome of evaluating one statement file in a batch.
// Exactly one of Result and Err is set.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// ProcessFiles evaluates every statement file named by paths. Directory
// paths are walked for statement files and processed by a bounded worker
// pool with a progress bar; plain file paths are evaluated directly.
// A failing file does not abort the batch; its error is recorded in the
// returned results.
func ProcessFiles(ctx context.Context, logger *zap.Logger, engine *Engine, paths []string) ([]FileResult, error) {
	var all []FileResult
	for _, path := range paths {
		results, err := processPath(ctx, logger, engine, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

func processPath(ctx context.Context, logger *zap.Logger, engine *Engine, path string) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		res, err := engine.RunFile(path)
		return []FileResult{{Path: path, Result: res, Err: err}}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	resultChan := make(chan FileResult, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				res, err := engine.RunFile(fp)
				if err != nil && logger != nil {
					logger.Debug("Error evaluating file", zap.String("file", fp), zap.Error(err))
				}
				resultChan <- FileResult{Path: fp, Result: res, Err: err}
				bar.Add(1)
			}(filePath)
		}
	}

	results := make([]FileResult, 0, len(files))
	for range files {
		results = append(results, <-resultChan)
	}
	fmt.Println()

	// workers finish in arbitrary order
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

var desiredExtensions = map[string]bool{
	".prop": true,
	".txt":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
