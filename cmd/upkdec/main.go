package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kk-code-lab/upkdec/internal/app"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	showVersionShort := flag.Bool("v", false, "Print version and exit (shorthand)")
	outDir := flag.String("out-dir", "", "Directory for converted files (default: alongside each input)")
	suffix := flag.String("suffix", "_decrypted", "Suffix appended to converted file names")
	keepGoing := flag.Bool("keep-going", false, "Continue the batch after a per-file failure")
	catalogPath := flag.String("catalog", "", "Path to the conversion catalog database (empty disables)")
	force := flag.Bool("force", false, "Reconvert inputs already recorded in the catalog")
	jsonOut := flag.Bool("json", false, "Output the batch report as JSON")
	flag.Parse()

	if *showVersion || *showVersionShort {
		fmt.Printf("upkdec %s (commit %s)\n", app.Version, app.BuildCommit)
		return
	}

	if err := run(flag.Args(), batchOptions{
		OutDir:      *outDir,
		Suffix:      *suffix,
		KeepGoing:   *keepGoing,
		CatalogPath: *catalogPath,
		Force:       *force,
	}, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "upkdec: %v\n", err)
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

func run(paths []string, opts batchOptions, jsonOut bool) error {
	if len(paths) == 0 {
		return usageError(ErrNoInputFiles.Error())
	}
	if opts.Suffix == "" {
		return usageError(ErrSuffixRequired.Error())
	}

	report, err := runBatch(paths, opts)
	if report != nil {
		if jsonOut {
			if jerr := writeJSONReport(report); jerr != nil && err == nil {
				err = jerr
			}
		} else {
			fmt.Printf("%s\n", formatReport(report))
		}
	}
	return err
}
