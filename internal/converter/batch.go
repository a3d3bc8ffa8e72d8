package converter

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nconklindev/csvfix/internal/locale"
	"github.com/nconklindev/csvfix/internal/types"

	"github.com/dustin/go-humanize"
)

// SupportedExtensions are collected when walking directories.
var SupportedExtensions = []string{".csv", ".xlsx"}

// Options configures a batch run.
type Options struct {
	SkipLines int
	Recurse   bool
	Locale    locale.Locale
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ProcessFile loads, transforms and rewrites a single file in place.
func ProcessFile(path string, opts Options) (*types.FileResult, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".xlsx":
		return processWorkbook(path, opts)
	default:
		return processCSV(path, opts)
	}
}

func processCSV(path string, opts Options) (*types.FileResult, error) {
	table, err := LoadTable(path, opts.SkipLines)
	if err != nil {
		return nil, err
	}

	conversions := Transform(table, opts.Locale)

	n, err := SaveTable(path, table)
	if err != nil {
		return nil, err
	}

	return &types.FileResult{
		File:         path,
		Rows:         len(table.Rows),
		Conversions:  conversions,
		BytesWritten: n,
	}, nil
}

func processWorkbook(path string, opts Options) (*types.FileResult, error) {
	table, err := LoadWorkbook(path, opts.SkipLines)
	if err != nil {
		return nil, err
	}

	conversions := Transform(table, opts.Locale)

	n, err := SaveWorkbook(path, table, conversions)
	if err != nil {
		return nil, err
	}

	return &types.FileResult{
		File:         path,
		Rows:         len(table.Rows),
		Conversions:  conversions,
		BytesWritten: n,
	}, nil
}

// CollectFiles expands directories into the supported files beneath them
// when recurse is set. Everything else is passed through untouched, so
// missing paths are reported when they are read.
func CollectFiles(paths []string, recurse bool) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() || !recurse {
			files = append(files, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isSupported(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}

func isSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Run processes every path in order. Missing and empty files are logged and
// skipped; any other error stops the batch. When progress is non-nil the
// completed fraction is offered after each file without blocking.
func Run(paths []string, opts Options, progress chan<- float64) (*types.BatchResult, error) {
	log := opts.logger()

	files, err := CollectFiles(paths, opts.Recurse)
	if err != nil {
		return nil, err
	}

	result := &types.BatchResult{}
	for i, file := range files {
		res, err := ProcessFile(file, opts)
		switch {
		case err != nil && Skippable(err):
			log.Error("skipping file", "file", file, "error", err)
			result.Failed = append(result.Failed, types.FileFailure{File: file, Err: err})
		case err != nil:
			return result, err
		default:
			logResult(log, res)
			result.Files = append(result.Files, *res)
		}

		if progress != nil {
			select {
			case progress <- float64(i+1) / float64(len(files)):
			default:
			}
		}
	}

	return result, nil
}

func logResult(log *slog.Logger, res *types.FileResult) {
	for _, c := range res.Conversions {
		log.Debug("converted cell",
			"file", res.File,
			"row", c.Row+1,
			"column", c.Column,
			"category", string(c.Category),
			"from", c.Old,
			"to", c.New,
		)
	}

	counts := res.Converted()
	log.Info("rewrote file",
		"file", res.File,
		"rows", res.Rows,
		"general", counts[types.CategoryGeneral],
		"currency", counts[types.CategoryCurrency],
		"percent", counts[types.CategoryPercent],
		"size", humanize.Bytes(uint64(res.BytesWritten)),
	)
}
