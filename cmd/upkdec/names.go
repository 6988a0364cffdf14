package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

const packageExt = ".upk"

// outputName derives the converted file path: X.upk -> X<suffix>.upk,
// optionally redirected into outDir. Inputs lacking the package
// extension, or whose stem already ends in the suffix, are rejected.
func outputName(path, outDir, suffix string) (string, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, packageExt) {
		return "", fmt.Errorf("%w: %s", ErrNotPackageFile, path)
	}
	stem := strings.TrimSuffix(base, ext)
	if strings.HasSuffix(strings.ToLower(stem), strings.ToLower(suffix)) {
		return "", fmt.Errorf("%w: %s", ErrAlreadyConverted, path)
	}
	dir := filepath.Dir(path)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, stem+suffix+ext), nil
}
