package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kk-code-lab/upkdec/internal/catalog"
	"github.com/kk-code-lab/upkdec/internal/rebuild"
)

type batchOptions struct {
	OutDir      string
	Suffix      string
	KeepGoing   bool
	CatalogPath string
	Force       bool
}

// runBatch converts each path in order. Whether a per-file failure
// aborts the batch or is recorded and skipped is the caller's policy,
// selected by KeepGoing.
func runBatch(paths []string, opts batchOptions) (*Report, error) {
	var store *catalog.Store
	if opts.CatalogPath != "" {
		var err error
		store, err = catalog.Open(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
	}

	report := &Report{StartedAt: time.Now().UTC(), Files: len(paths)}
	for _, path := range paths {
		err := convertOne(context.Background(), path, opts, store, report)
		if err == nil {
			continue
		}
		report.Failed++
		if len(report.ErrorSample) < 5 {
			report.ErrorSample = append(report.ErrorSample, fmt.Sprintf("%s: %v", path, err))
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		if !opts.KeepGoing {
			report.FinishedAt = time.Now().UTC()
			return report, err
		}
	}
	report.FinishedAt = time.Now().UTC()
	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d files failed", report.Failed, report.Files)
	}
	return report, nil
}

func convertOne(ctx context.Context, path string, opts batchOptions, store *catalog.Store, report *Report) error {
	outPath, err := outputName(path, opts.OutDir, opts.Suffix)
	if err != nil {
		return err
	}

	if store != nil && !opts.Force {
		if _, err := store.BySource(ctx, path); err == nil {
			report.Skipped++
			fmt.Printf("skipped %s (already converted)\n", path)
			return nil
		} else if !errors.Is(err, catalog.ErrNotFound) {
			return err
		}
	}

	input, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := rebuild.Reconstruct(input)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, res.Output, 0o644); err != nil {
		return err
	}

	if store != nil {
		rec := catalog.Record{
			SourcePath:      path,
			OutputPath:      outPath,
			InputSize:       int64(len(input)),
			FileVersion:     int(res.Summary.FileVersion),
			LicenseeVersion: int(res.Summary.LicenseeVersion),
			FolderName:      res.Summary.FolderName,
			ChunkCount:      res.ChunkCount,
			InputDigest:     res.InputDigest[:],
			OutputDigest:    res.OutputDigest[:],
			ConvertedAt:     time.Now().UTC(),
		}
		if err := store.Put(ctx, rec); err != nil {
			return err
		}
	}

	report.Converted++
	report.BytesIn += int64(len(input))
	report.BytesOut += int64(len(res.Output))
	fmt.Printf("converted %s -> %s (%d chunks)\n", path, outPath, res.ChunkCount)
	return nil
}
