// Package extractor is the CLI wrapper around the sticker extraction
// pipeline. It processes photos of sticker sheets, one per worker.
package extractor

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/louisbranch/stickerbook/internal/extractor"
	platformcmd "github.com/louisbranch/stickerbook/internal/platform/cmd"
)

// Mode selects what the extractor run does.
type Mode string

const (
	// ModeDebug processes a single file and saves every intermediate stage.
	ModeDebug Mode = "debug"
	// ModeExtract processes a whole directory of sheet photos.
	ModeExtract Mode = "extract"
)

// Config holds configuration for the extractor command.
type Config struct {
	Mode      Mode
	InputFile string
	SourceDir string
	TargetDir string
	Workers   int
}

// ParseConfig parses CLI flags and the subcommand into a Config.
//
// Usage:
//
//	extractor debug <input-file>
//	extractor extract <source-directory> <target-directory>
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Workers: runtime.NumCPU(),
	}

	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of photos processed in parallel")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("a subcommand is required: debug or extract")
	}

	switch Mode(rest[0]) {
	case ModeDebug:
		if len(rest) != 2 {
			return Config{}, errors.New("usage: debug <input-file>")
		}
		cfg.Mode = ModeDebug
		cfg.InputFile = rest[1]
	case ModeExtract:
		if len(rest) != 3 {
			return Config{}, errors.New("usage: extract <source-directory> <target-directory>")
		}
		cfg.Mode = ModeExtract
		cfg.SourceDir = rest[1]
		cfg.TargetDir = rest[2]
	default:
		return Config{}, fmt.Errorf("unknown subcommand %q", rest[0])
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// Run executes the extractor using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceExtractor, func(ctx context.Context) error {
		switch cfg.Mode {
		case ModeDebug:
			written, err := extractor.Extract(ctx, cfg.InputFile, "./", true)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "extracted %d sticker(s)\n", len(written))
			return err
		case ModeExtract:
			return runDirectory(ctx, cfg, out)
		default:
			return fmt.Errorf("unknown mode %q", cfg.Mode)
		}
	})
}

func runDirectory(ctx context.Context, cfg Config, out io.Writer) error {
	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		return fmt.Errorf("list source directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(cfg.SourceDir, entry.Name()))
	}
	if len(paths) == 0 {
		return errors.New("source directory has no files")
	}

	jobs := make(chan string)
	errs := make([]error, cfg.Workers)
	counts := make([]int, cfg.Workers)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for path := range jobs {
				written, err := extractor.Extract(ctx, path, cfg.TargetDir, false)
				if err != nil {
					errs[worker] = errors.Join(errs[worker], err)
					continue
				}
				counts[worker] += len(written)
			}
		}(i)
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}

	total := 0
	for _, count := range counts {
		total += count
	}
	_, err = fmt.Fprintf(out, "extracted %d sticker(s) from %d photo(s) into %s\n", total, len(paths), cfg.TargetDir)
	return err
}
